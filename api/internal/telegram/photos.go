package telegram

import (
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var httpc = &http.Client{Timeout: 60 * time.Second}

func (r *Router) acceptPhoto(msg tgbotapi.Message) {
	cid := msg.Chat.ID
	// largest size last
	ph := msg.Photo[len(msg.Photo)-1]
	img, err := r.fetchFile(ph.FileID)
	if err != nil {
		r.SendError(cid, err)
		return
	}
	r.process(cid, img)
}

func (r *Router) acceptDocument(msg tgbotapi.Message) {
	cid := msg.Chat.ID
	img, err := r.fetchFile(msg.Document.FileID)
	if err != nil {
		r.SendError(cid, err)
		return
	}
	r.process(cid, img)
}

func (r *Router) fetchFile(fileID string) ([]byte, error) {
	tf, err := r.Bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}
	url := fmt.Sprintf("https://api.telegram.org/file/bot%s/%s", r.Bot.Token, tf.FilePath)
	return download(url)
}

func download(url string) ([]byte, error) {
	resp, err := httpc.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("download %d: %s", resp.StatusCode, string(b))
	}
	return io.ReadAll(resp.Body)
}

// engineChoice remembers which engine a chat switched to.
type engineChoice struct {
	m sync.Map // chatID -> engine name
}

func (c *engineChoice) get(chatID int64) string {
	if v, ok := c.m.Load(chatID); ok {
		return v.(string)
	}
	return "anthropic"
}

func (c *engineChoice) set(chatID int64, name string) {
	c.m.Store(chatID, name)
}
