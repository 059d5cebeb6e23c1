package telegram

import (
	"context"
	"fmt"
	"log"

	"go-jobfinder-bot/internal/aggregator"
	"go-jobfinder-bot/internal/database"
	"go-jobfinder-bot/internal/session"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

//sender is the slice of the Telegram API the handlers need. *tgbotapi.BotAPI
//implements it; tests substitute a recorder.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
}

type Bot struct {
	api      *tgbotapi.BotAPI
	sender   sender
	agg      *aggregator.Aggregator
	repo     *database.Repository
	sessions *session.Store
}

func NewBot(token string, agg *aggregator.Aggregator, repo *database.Repository) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to init telegram bot: %w", err)
	}
	return &Bot{
		api:      api,
		sender:   api,
		agg:      agg,
		repo:     repo,
		sessions: session.NewStore(),
	}, nil
}

//Run consumes updates via long polling until ctx is cancelled. Each update is
//handled to completion before the next one is read.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 30
	updates := b.api.GetUpdatesChan(u)
	log.Printf("🤖 Bot @%s is listening", b.api.Self.UserName)

	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update := <-updates:
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	ev, ok := parseUpdate(update)
	if !ok {
		return
	}

	if ev.callback != "" {
		//stop the client-side spinner before doing any work
		if _, err := b.sender.Request(tgbotapi.NewCallback(ev.callback, "")); err != nil {
			log.Printf("⚠️ Failed to answer callback: %v", err)
		}
	}

	switch ev.kind {
	case eventStart:
		b.handleStart(ev)
	case eventHelp:
		b.handleHelp(ev)
	case eventSearchPrompt:
		b.handleSearchPrompt(ev)
	case eventSearch:
		b.handleSearch(ctx, ev)
	case eventSaved:
		b.handleSaved(ctx, ev)
	case eventSaveResult:
		b.handleSave(ctx, ev)
	case eventRemoveSaved:
		b.handleRemove(ctx, ev)
	}
}

func (b *Bot) handleStart(ev event) {
	keyboard := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔍 Search Jobs", "search"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("⭐ Saved Jobs", "saved"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("ℹ️ Help", "help"),
		),
	)

	msg := tgbotapi.NewMessage(ev.chatID, welcomeText)
	msg.ReplyMarkup = keyboard
	b.send(msg)
}

func (b *Bot) handleHelp(ev event) {
	b.sendText(ev.chatID, helpText)
}

func (b *Bot) handleSearchPrompt(ev event) {
	b.edit(ev.chatID, ev.messageID, searchPromptText)
}

func (b *Bot) handleSearch(ctx context.Context, ev event) {
	if ev.query == "" {
		b.sendText(ev.chatID, searchUsageText)
		return
	}

	b.sendText(ev.chatID, fmt.Sprintf("🔍 Searching for '%s' jobs...", ev.query))

	jobs := b.agg.Search(ctx, ev.query)
	if len(jobs) == 0 {
		b.sendText(ev.chatID, "No jobs found. Try different keywords.")
		return
	}

	//replace the user's session before rendering so the save buttons always
	//resolve against the list they were rendered for
	b.sessions.Put(ev.userID, jobs)

	for i, job := range jobs {
		msg := tgbotapi.NewMessage(ev.chatID, formatJob(job))
		msg.ParseMode = tgbotapi.ModeMarkdownV2
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("💾 Save Job", fmt.Sprintf("save_%d", i)),
			),
		)
		b.send(msg)
	}
}

func (b *Bot) handleSaved(ctx context.Context, ev event) {
	jobs, err := b.repo.ListRecent(ctx, ev.userID)
	if err != nil {
		log.Printf("❌ Failed to list saved jobs for user %d: %v", ev.userID, err)
		b.sendText(ev.chatID, "⚠️ Could not load your saved jobs. Please try again.")
		return
	}

	if len(jobs) == 0 {
		b.sendText(ev.chatID, "You haven't saved any jobs yet.")
		return
	}

	for _, job := range jobs {
		msg := tgbotapi.NewMessage(ev.chatID, formatSavedJob(job))
		msg.ParseMode = tgbotapi.ModeMarkdownV2
		msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("🗑 Remove", fmt.Sprintf("remove_%d", job.ID)),
			),
		)
		b.send(msg)
	}
}

func (b *Bot) handleSave(ctx context.Context, ev event) {
	job, ok := b.sessions.Get(ev.userID, ev.index)
	if !ok {
		//stale session: the results this button belonged to are gone
		b.edit(ev.chatID, ev.messageID, "❌ Error: Job not found.")
		return
	}

	if err := b.repo.Save(ctx, ev.userID, job); err != nil {
		log.Printf("❌ Failed to save job for user %d: %v", ev.userID, err)
		b.edit(ev.chatID, ev.messageID, "⚠️ Could not save the job. Please try again.")
		return
	}

	b.edit(ev.chatID, ev.messageID, "✅ Job saved to your favorites!")
}

func (b *Bot) handleRemove(ctx context.Context, ev event) {
	if err := b.repo.Remove(ctx, ev.userID, ev.jobID); err != nil {
		log.Printf("❌ Failed to remove job %d for user %d: %v", ev.jobID, ev.userID, err)
		b.edit(ev.chatID, ev.messageID, "⚠️ Could not remove the job. Please try again.")
		return
	}

	//confirmed unconditionally: Remove treats a miss as a no-op
	b.edit(ev.chatID, ev.messageID, "🗑 Job removed from your saved list.")
}

func (b *Bot) send(c tgbotapi.Chattable) {
	if _, err := b.sender.Send(c); err != nil {
		log.Printf("⚠️ Failed to send message: %v", err)
	}
}

func (b *Bot) sendText(chatID int64, text string) {
	b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) edit(chatID int64, messageID int, text string) {
	b.send(tgbotapi.NewEditMessageText(chatID, messageID, text))
}
