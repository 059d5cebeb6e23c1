package telegram

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type eventKind int

const (
	eventStart eventKind = iota
	eventHelp
	eventSearch
	eventSearchPrompt
	eventSaved
	eventSaveResult
	eventRemoveSaved
)

//event is the tagged form of one inbound update. Handlers dispatch on kind
//instead of re-parsing command and callback strings.
type event struct {
	kind      eventKind
	chatID    int64
	userID    int64
	messageID int    // message carrying the pressed button, for edits
	callback  string // callback query id to acknowledge, empty for messages
	query     string // eventSearch
	index     int    // eventSaveResult
	jobID     int64  // eventRemoveSaved
}

//parseUpdate classifies an inbound update. The second return is false for
//updates the bot does not handle.
func parseUpdate(update tgbotapi.Update) (event, bool) {
	if update.Message != nil && update.Message.From != nil {
		msg := update.Message
		ev := event{chatID: msg.Chat.ID, userID: msg.From.ID}

		if msg.IsCommand() {
			switch msg.Command() {
			case "start":
				ev.kind = eventStart
			case "help":
				ev.kind = eventHelp
			case "saved":
				ev.kind = eventSaved
			case "search":
				ev.kind = eventSearch
				ev.query = strings.TrimSpace(msg.CommandArguments())
			default:
				return event{}, false
			}
			return ev, true
		}

		//free text is an implicit search
		if text := strings.TrimSpace(msg.Text); text != "" {
			ev.kind = eventSearch
			ev.query = text
			return ev, true
		}
		return event{}, false
	}

	if cb := update.CallbackQuery; cb != nil && cb.Message != nil {
		ev := event{
			chatID:    cb.Message.Chat.ID,
			userID:    cb.From.ID,
			messageID: cb.Message.MessageID,
			callback:  cb.ID,
		}
		return parseCallbackData(ev, cb.Data)
	}

	return event{}, false
}

func parseCallbackData(ev event, data string) (event, bool) {
	switch {
	case data == "search":
		ev.kind = eventSearchPrompt
	case data == "saved":
		ev.kind = eventSaved
	case data == "help":
		ev.kind = eventHelp
	case strings.HasPrefix(data, "save_"):
		index, err := strconv.Atoi(strings.TrimPrefix(data, "save_"))
		if err != nil {
			return event{}, false
		}
		ev.kind = eventSaveResult
		ev.index = index
	case strings.HasPrefix(data, "remove_"):
		id, err := strconv.ParseInt(strings.TrimPrefix(data, "remove_"), 10, 64)
		if err != nil {
			return event{}, false
		}
		ev.kind = eventRemoveSaved
		ev.jobID = id
	default:
		return event{}, false
	}
	return ev, true
}
