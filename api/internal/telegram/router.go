package telegram

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"schedule-scanner/api/internal/scanner"
)

type Router struct {
	Bot     *tgbotapi.BotAPI
	Scanner *scanner.Scanner

	// per-chat engine choice, no persistence
	engines engineChoice
}

func (r *Router) HandleUpdate(upd tgbotapi.Update) {
	if upd.Message == nil {
		return
	}
	if upd.Message.IsCommand() {
		r.handleCommand(*upd.Message)
		return
	}
	if len(upd.Message.Photo) > 0 {
		r.acceptPhoto(*upd.Message)
		return
	}
	if doc := upd.Message.Document; doc != nil && strings.HasPrefix(doc.MimeType, "image/") {
		r.acceptDocument(*upd.Message)
		return
	}
	r.send(upd.Message.Chat.ID, "Send a photo of an employee schedule and I will extract, summarize and file it.")
}

func (r *Router) handleCommand(msg tgbotapi.Message) {
	cid := msg.Chat.ID
	switch msg.Command() {
	case "start":
		r.send(cid, "Send a photo of an employee schedule — I will return the extracted table, total hours and a summary, and save the record.\nCommands: /health, /engine")
	case "health":
		r.send(cid, "✅ OK")
	case "engine":
		args := strings.Fields(msg.CommandArguments())
		if len(args) == 0 {
			r.send(cid, "Current engine: "+r.engines.get(cid)+
				"\nUsage:\n/engine anthropic\n/engine gemini")
			return
		}
		name := strings.ToLower(args[0])
		if _, err := r.Scanner.Engines.Get(name); err != nil {
			r.send(cid, "Unknown engine. Available: anthropic | gemini")
			return
		}
		r.engines.set(cid, name)
		r.send(cid, "Ok, switching to: "+name)
	default:
		r.send(cid, "Unknown command")
	}
}

func (r *Router) process(cid int64, img []byte) {
	r.send(cid, "Got the photo, processing…")

	ctx, cancel := context.WithTimeout(context.Background(), 180*time.Second)
	defer cancel()

	res, err := r.Scanner.Process(ctx, img, r.engines.get(cid))
	if err != nil {
		switch {
		case errors.Is(err, scanner.ErrDuplicateWeek):
			r.send(cid, "❌ A schedule for this week has already been processed for "+
				res.Schedule.EmployeeName+".\nIf you need to update this week's schedule, please contact your administrator.")
		case errors.Is(err, scanner.ErrNoEmployeeName):
			r.send(cid, "❌ Could not find an employee name in the schedule. Try a clearer photo.")
		case errors.Is(err, scanner.ErrBadImage):
			r.send(cid, "❌ That does not look like a png/jpeg image.")
		default:
			r.SendError(cid, err)
		}
		return
	}

	r.send(cid, formatResult(res))
}

func formatResult(res scanner.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📅 Schedule for %s\n\n", res.Schedule.EmployeeName)
	for _, e := range res.Schedule.Schedule {
		fmt.Fprintf(&b, "%s — %s — %s\n", e.Day, e.Location, e.Hours)
	}
	fmt.Fprintf(&b, "\nTotal hours: %v\n%s\n", res.Analysis.TotalHours, res.Analysis.Summary)
	fmt.Fprintf(&b, "\n✅ Saved to: %s", res.SavedPath)
	return b.String()
}

func (r *Router) send(chatID int64, text string) {
	if _, err := r.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		log.Printf("tg send: %v", err)
	}
}

func (r *Router) SendError(chatID int64, err error) {
	r.send(chatID, "❌ "+err.Error())
}
