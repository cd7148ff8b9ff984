package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"

	api "github.com/OvyFlash/telegram-bot-api"
	"github.com/i7k15/ai-study-advisor/config"
	"github.com/i7k15/ai-study-advisor/internal/catalog"
	"github.com/i7k15/ai-study-advisor/internal/model"
	"github.com/i7k15/ai-study-advisor/internal/session"
	"github.com/i7k15/ai-study-advisor/pkg/local"
	"github.com/samber/lo"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const (
	CommandStart    = "start"
	CommandHelp     = "help"
	CommandModes    = "modes"
	CommandSettings = "settings"
	CommandAnalyze  = "analyze"
	CommandFiles    = "files"
	CommandDetach   = "detach"
	CommandClear    = "clear"
	CommandLogout   = "logout"

	// Telegram rejects longer messages.
	maxMessageLength = 4096
)

// Callback data prefixes.
const (
	callbackLanguage = "lang:"
	callbackLogin    = "login:"
	callbackLevel    = "level:"
	callbackMajor    = "major:"
	callbackSkip     = "profiling:skip"
	callbackMode     = "mode:"
	callbackSetting  = "set:"

	loginGoogle = "google"
	loginEmail  = "email"
	loginBack   = "back"

	settingLanguage = "lang"
	settingTheme    = "theme"
	settingStyle    = "style"
	settingDetail   = "detail"
	settingGeneral  = "general"
	settingStrict   = "strict"
	settingHistory  = "history"
	settingClear    = "clear"
	settingLogout   = "logout"
	settingClose    = "close"
)

var ErrUnknownCallback = errors.New("unknown callback")

type Bot interface {
	Send(c api.Chattable) (api.Message, error)
	Request(c api.Chattable) (*api.APIResponse, error)
	GetFileDirectURL(fileID string) (string, error)
}

type TelegramUsecaseDeps struct {
	Bot         Bot
	Profile     *ProfileUsecase
	Study       *StudyUsecase
	Attachments *AttachmentUsecase
	Logger      *zap.Logger
}

type TelegramUsecase struct {
	TelegramUsecaseDeps
	cfg          config.Telegram
	allowedUsers map[int64]struct{}
	albums       *albums
}

func NewTelegramUsecase(cfg config.Telegram, deps TelegramUsecaseDeps) (*TelegramUsecase, error) {
	allowedUsers := make(map[int64]struct{}, len(cfg.AllowedTelegramID))
	for _, userID := range cfg.AllowedTelegramID {
		allowedUsers[userID] = struct{}{}
	}

	_, err := deps.Bot.Request(
		api.NewSetMyCommands(
			[]api.BotCommand{
				{Command: CommandModes, Description: "Choose a study mode"},
				{Command: CommandSettings, Description: "Settings"},
				{Command: CommandAnalyze, Description: "Analyze attached files"},
				{Command: CommandFiles, Description: "List attached files"},
				{Command: CommandDetach, Description: "Remove attached files"},
				{Command: CommandClear, Description: "Clear study history"},
				{Command: CommandHelp, Description: "Get help"},
			}...,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to set bot commands: %w", err)
	}

	return &TelegramUsecase{
		TelegramUsecaseDeps: deps,
		cfg:                 cfg,
		allowedUsers:        allowedUsers,
		albums:              newAlbums(cfg.AlbumSettle),
	}, nil
}

// Run handles updates until ctx is done or the channel is closed. Updates
// are processed concurrently by at most cfg.Workers goroutines.
func (t *TelegramUsecase) Run(ctx context.Context, updates <-chan api.Update) error {
	workers := t.cfg.Workers
	if workers <= 0 {
		workers = 1
	}
	p := pool.New().WithMaxGoroutines(workers)
	defer p.Wait()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			p.Go(
				func() {
					t.HandleUpdate(ctx, update)
				},
			)
		}
	}
}

func (t *TelegramUsecase) HandleUpdate(ctx context.Context, update api.Update) {
	if update.Message != nil {
		if err := t.handleMessage(ctx, update.Message); err != nil {
			t.Logger.Error("error handling message", zap.Int("update_id", update.UpdateID), zap.Error(err))
		}
	}
	if update.CallbackQuery != nil {
		if err := t.handleCallbackQuery(ctx, update.CallbackQuery); err != nil {
			t.Logger.Error("error handling callback query", zap.Int("update_id", update.UpdateID), zap.Error(err))
		}
	}
}

func (t *TelegramUsecase) hasAccess(chatID int64) bool {
	if !t.cfg.IsNotPublic {
		return true
	}
	_, ok := t.allowedUsers[chatID]
	return ok
}

func (t *TelegramUsecase) handleMessage(ctx context.Context, msg *api.Message) error {
	chatID := msg.Chat.ID
	if !t.hasAccess(chatID) {
		t.sendMessageAndHandleErr(chatID, TextNoAccess.Text(local.Default))
		return nil
	}

	sess, err := t.Profile.Session(ctx, chatID)
	if err != nil {
		t.sendMessageAndHandleErr(chatID, TextServerError.Text(local.Default))
		return fmt.Errorf("failed to get session: %w", err)
	}
	language := sess.Profile().Language

	step, err := t.Profile.Step(ctx, chatID)
	if err != nil {
		t.sendMessageAndHandleErr(chatID, TextServerError.Text(language))
		return fmt.Errorf("failed to get onboarding step: %w", err)
	}

	if msg.IsCommand() {
		return t.handleCommand(ctx, sess, step, msg.Command())
	}

	if step != model.OnboardingStepApp {
		return t.show(chatID, 0, t.stepScreen(sess, step))
	}

	if msg.Document != nil || len(msg.Photo) > 0 {
		return t.handleAttachment(ctx, sess, msg)
	}
	return t.sendTopic(ctx, sess, msg.Text)
}

func (t *TelegramUsecase) handleCommand(
	ctx context.Context,
	sess *session.Session,
	step model.OnboardingStep,
	command string,
) error {
	chatID := sess.ChatID
	language := sess.Profile().Language

	switch command {
	case CommandStart:
		if step != model.OnboardingStepApp {
			return t.show(chatID, 0, t.stepScreen(sess, step))
		}
		t.sendMessageAndHandleErr(chatID, TextWelcome.Text(language))
		return t.show(chatID, 0, t.readyScreen(sess))
	case CommandLogout:
		return t.logout(ctx, chatID, 0, language)
	}

	if step != model.OnboardingStepApp {
		return t.show(chatID, 0, t.stepScreen(sess, step))
	}

	switch command {
	case CommandHelp:
		t.sendMessageAndHandleErr(chatID, TextHelp.Text(language))
	case CommandModes:
		return t.show(chatID, 0, modesScreen(language))
	case CommandSettings:
		return t.show(chatID, 0, settingsScreen(sess.Profile()))
	case CommandAnalyze:
		return t.sendTopic(ctx, sess, "")
	case CommandFiles:
		t.sendMessageAndHandleErr(chatID, filesText(sess.Attachments(), language))
	case CommandDetach:
		t.sendMessageAndHandleErr(chatID, TextFilesDetached.Format(language, sess.DropAttachments()))
	case CommandClear:
		if err := t.Profile.ClearHistory(ctx, sess); err != nil {
			t.sendMessageAndHandleErr(chatID, TextServerError.Text(language))
			return err
		}
		t.sendMessageAndHandleErr(chatID, TextHistoryCleared.Text(language))
	default:
		t.sendMessageAndHandleErr(chatID, TextUnknownCommand.Text(language))
	}
	return nil
}

func (t *TelegramUsecase) handleAttachment(ctx context.Context, sess *session.Session, msg *api.Message) error {
	chatID := sess.ChatID
	language := sess.Profile().Language
	captioned := strings.TrimSpace(msg.Caption) != ""

	var groupID string
	if msg.MediaGroupID != "" {
		groupID = strconv.FormatInt(chatID, 10) + ":" + msg.MediaGroupID
		t.albums.begin(groupID, captioned)
	}

	files, errs := t.Attachments.Encode(ctx, fileRefs(msg))
	for _, err := range errs {
		var readErr *AttachmentReadError
		if errors.As(err, &readErr) {
			t.sendMessageAndHandleErr(chatID, TextAttachmentFailed.Format(language, readErr.FileName))
		}
	}
	if len(files) > 0 {
		sess.Attach(msg.MessageID, files...)
	}

	list := len(files) > 0
	if groupID != "" {
		var err error
		if list, err = t.albums.wait(ctx, groupID, captioned); err != nil {
			return fmt.Errorf("failed to wait for album: %w", err)
		}
	} else if len(files) == 0 {
		return nil
	}

	if captioned {
		return t.sendTopic(ctx, sess, msg.Caption)
	}
	if list {
		t.sendMessageAndHandleErr(chatID, filesText(sess.Attachments(), language))
	}
	return nil
}

func fileRefs(msg *api.Message) []FileRef {
	if msg.Document != nil {
		return []FileRef{
			{
				FileID:   msg.Document.FileID,
				FileName: msg.Document.FileName,
				MimeType: msg.Document.MimeType,
			},
		}
	}
	if len(msg.Photo) > 0 {
		// The last size is the largest one.
		photo := msg.Photo[len(msg.Photo)-1]
		return []FileRef{
			{
				FileID:   photo.FileID,
				FileName: "photo_" + strconv.Itoa(msg.MessageID) + ".jpg",
				MimeType: "image/jpeg",
			},
		}
	}
	return nil
}

func filesText(files []model.AttachedFile, language local.Language) string {
	if len(files) == 0 {
		return TextNoFiles.Text(language)
	}
	names := lo.Map(
		files, func(f model.AttachedFile, i int) string {
			return fmt.Sprintf("%d) %s", i+1, f.FileName)
		},
	)
	return TextFilesAttached.Format(language, len(files), strings.Join(names, "\n"))
}

func (t *TelegramUsecase) sendTopic(ctx context.Context, sess *session.Session, topic string) error {
	chatID := sess.ChatID
	language := sess.Profile().Language

	if strings.TrimSpace(topic) == "" && len(sess.Attachments()) == 0 {
		t.sendMessageAndHandleErr(chatID, TextNothingToSend.Text(language))
		return nil
	}

	if _, err := t.Bot.Request(api.NewChatAction(chatID, api.ChatTyping)); err != nil {
		t.Logger.Warn("failed to send chat action", zap.Int64("chat_id", chatID), zap.Error(err))
	}

	turn, ok := t.Study.SendDraft(ctx, sess, topic)
	if !ok {
		t.sendMessageAndHandleErr(chatID, TextStillWorking.Text(language))
		return nil
	}

	answer := turn.Answer.Content
	if turn.Answer.Failed {
		answer = TextFailedPrefix.Text(language) + answer
	}
	for _, chunk := range splitMessage(answer, maxMessageLength) {
		if _, err := t.sendMessage(chatID, chunk); err != nil {
			return fmt.Errorf("failed to send answer: %w", err)
		}
	}
	return nil
}

func (t *TelegramUsecase) handleCallbackQuery(ctx context.Context, query *api.CallbackQuery) error {
	if _, err := t.Bot.Request(api.NewCallback(query.ID, "")); err != nil {
		return fmt.Errorf("failed to request callback: %w", err)
	}
	if query.Message == nil {
		return nil
	}
	chatID := query.Message.Chat.ID
	messageID := query.Message.MessageID
	if !t.hasAccess(chatID) {
		t.sendMessageAndHandleErr(chatID, TextNoAccess.Text(local.Default))
		return nil
	}

	sess, err := t.Profile.Session(ctx, chatID)
	if err != nil {
		t.sendMessageAndHandleErr(chatID, TextServerError.Text(local.Default))
		return fmt.Errorf("failed to get session: %w", err)
	}

	data := query.Data
	switch {
	case strings.HasPrefix(data, callbackLanguage):
		return t.onLanguage(ctx, sess, messageID, strings.TrimPrefix(data, callbackLanguage))
	case strings.HasPrefix(data, callbackLogin):
		name := ""
		if query.From != nil {
			name = query.From.FirstName
		}
		return t.onLogin(ctx, sess, messageID, strings.TrimPrefix(data, callbackLogin), name)
	case strings.HasPrefix(data, callbackLevel):
		return t.onProfilingAnswer(ctx, sess, messageID, strings.TrimPrefix(data, callbackLevel), true)
	case strings.HasPrefix(data, callbackMajor):
		return t.onProfilingAnswer(ctx, sess, messageID, strings.TrimPrefix(data, callbackMajor), false)
	case data == callbackSkip:
		return t.finishOnboarding(ctx, sess, messageID)
	case strings.HasPrefix(data, callbackMode):
		return t.onMode(sess, messageID, model.StudyMode(strings.TrimPrefix(data, callbackMode)))
	case strings.HasPrefix(data, callbackSetting):
		return t.onSetting(ctx, sess, messageID, strings.TrimPrefix(data, callbackSetting))
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCallback, data)
	}
}

func (t *TelegramUsecase) onLanguage(ctx context.Context, sess *session.Session, messageID int, value string) error {
	language, ok := local.ParseLanguage(value)
	if !ok {
		return fmt.Errorf("%w: language %q", ErrUnknownCallback, value)
	}
	if _, err := t.Profile.Update(
		ctx, sess, func(p *model.UserProfile) {
			p.Language = language
		},
	); err != nil {
		return err
	}
	return t.moveTo(ctx, sess, messageID, model.OnboardingStepLogin)
}

func (t *TelegramUsecase) onLogin(
	ctx context.Context,
	sess *session.Session,
	messageID int,
	action string,
	name string,
) error {
	switch action {
	case loginBack:
		return t.moveTo(ctx, sess, messageID, model.OnboardingStepLanguage)
	case loginGoogle, loginEmail:
		if _, err := t.Profile.Update(
			ctx, sess, func(p *model.UserProfile) {
				p.Name = name
			},
		); err != nil {
			return err
		}
		t.Logger.Info("user signed in", zap.Int64("chat_id", sess.ChatID), zap.String("method", action))
		return t.moveTo(ctx, sess, messageID, model.OnboardingStepProfiling)
	default:
		return fmt.Errorf("%w: login %q", ErrUnknownCallback, action)
	}
}

func (t *TelegramUsecase) onProfilingAnswer(
	ctx context.Context,
	sess *session.Session,
	messageID int,
	value string,
	isLevel bool,
) error {
	options := majorOptions
	if isLevel {
		options = studyLevelOptions
	}
	i, err := strconv.Atoi(value)
	if err != nil || i < 0 || i >= len(options) {
		return fmt.Errorf("%w: option %q", ErrUnknownCallback, value)
	}

	language := sess.Profile().Language
	if _, err = t.Profile.Update(
		ctx, sess, func(p *model.UserProfile) {
			if isLevel {
				p.StudyLevel = options[i].Text(language)
			} else {
				p.Major = options[i].Text(language)
			}
		},
	); err != nil {
		return err
	}

	if isLevel {
		return t.show(sess.ChatID, messageID, majorScreen(language))
	}
	return t.finishOnboarding(ctx, sess, messageID)
}

func (t *TelegramUsecase) finishOnboarding(ctx context.Context, sess *session.Session, messageID int) error {
	return t.moveTo(ctx, sess, messageID, model.OnboardingStepApp)
}

func (t *TelegramUsecase) moveTo(
	ctx context.Context,
	sess *session.Session,
	messageID int,
	step model.OnboardingStep,
) error {
	if err := t.Profile.SetStep(ctx, sess.ChatID, step); err != nil {
		t.sendMessageAndHandleErr(sess.ChatID, TextServerError.Text(sess.Profile().Language))
		return err
	}
	return t.show(sess.ChatID, messageID, t.stepScreen(sess, step))
}

func (t *TelegramUsecase) onMode(sess *session.Session, messageID int, mode model.StudyMode) error {
	language := sess.Profile().Language
	modeConfig, err := catalog.Lookup(mode)
	if err != nil {
		return err
	}
	sess.SetMode(mode)

	text := TextModeSelected.Format(language, modeConfig.Title.Text(language), modeConfig.Description.Text(language))
	if mode == model.StudyModeNotebookLM && len(sess.Attachments()) == 0 {
		text += "\n\n" + TextUploadSources.Text(language)
	}
	return t.show(sess.ChatID, messageID, screen{text: text})
}

func (t *TelegramUsecase) onSetting(ctx context.Context, sess *session.Session, messageID int, setting string) error {
	chatID := sess.ChatID
	language := sess.Profile().Language

	var mutate func(p *model.UserProfile)
	switch setting {
	case settingLanguage:
		mutate = func(p *model.UserProfile) {
			p.Language = lo.Ternary(p.Language == local.Ara, local.Eng, local.Ara)
		}
	case settingTheme:
		mutate = func(p *model.UserProfile) {
			p.Theme = next(model.Themes, p.Theme)
		}
	case settingStyle:
		mutate = func(p *model.UserProfile) {
			p.DefaultStyle = next(model.StudyModes, p.DefaultStyle)
		}
	case settingDetail:
		mutate = func(p *model.UserProfile) {
			p.DetailLevel = next(model.DetailLevels, p.DetailLevel)
		}
	case settingGeneral:
		mutate = func(p *model.UserProfile) {
			p.AllowGeneralChat = !p.AllowGeneralChat
		}
	case settingStrict:
		mutate = func(p *model.UserProfile) {
			p.StrictSourcesOnly = !p.StrictSourcesOnly
		}
	case settingHistory:
		mutate = func(p *model.UserProfile) {
			p.SaveHistory = !p.SaveHistory
		}
	case settingClear:
		if err := t.Profile.ClearHistory(ctx, sess); err != nil {
			t.sendMessageAndHandleErr(chatID, TextServerError.Text(language))
			return err
		}
		t.sendMessageAndHandleErr(chatID, TextHistoryCleared.Text(language))
		return nil
	case settingLogout:
		return t.logout(ctx, chatID, messageID, language)
	case settingClose:
		return t.show(chatID, messageID, screen{text: TextSettingsSaved.Text(language)})
	default:
		return fmt.Errorf("%w: setting %q", ErrUnknownCallback, setting)
	}

	profile, err := t.Profile.Update(ctx, sess, mutate)
	if err != nil {
		t.sendMessageAndHandleErr(chatID, TextServerError.Text(language))
		return err
	}
	return t.show(chatID, messageID, settingsScreen(profile))
}

func (t *TelegramUsecase) logout(ctx context.Context, chatID int64, messageID int, language local.Language) error {
	if err := t.Profile.Logout(ctx, chatID); err != nil {
		t.sendMessageAndHandleErr(chatID, TextServerError.Text(language))
		return err
	}
	return t.show(chatID, messageID, screen{text: TextLoggedOut.Text(language)})
}

// next returns the value following current in values, wrapping around.
func next[T comparable](values []T, current T) T {
	i := lo.IndexOf(values, current)
	return values[(i+1)%len(values)]
}

// screen is a message together with its optional inline keyboard.
type screen struct {
	text     string
	keyboard *api.InlineKeyboardMarkup
}

// show sends s as a new message, or replaces message messageID when it is set.
func (t *TelegramUsecase) show(chatID int64, messageID int, s screen) error {
	var c api.Chattable
	switch {
	case messageID == 0:
		msg := api.NewMessage(chatID, s.text)
		if s.keyboard != nil {
			msg.ReplyMarkup = *s.keyboard
		}
		c = msg
	case s.keyboard != nil:
		c = api.NewEditMessageTextAndMarkup(chatID, messageID, s.text, *s.keyboard)
	default:
		c = api.NewEditMessageText(chatID, messageID, s.text)
	}
	if _, err := t.Bot.Send(c); err != nil {
		return fmt.Errorf("failed to send message to bot: %w", err)
	}
	return nil
}

func (t *TelegramUsecase) stepScreen(sess *session.Session, step model.OnboardingStep) screen {
	language := sess.Profile().Language
	switch step {
	case model.OnboardingStepLogin:
		return loginScreen(language)
	case model.OnboardingStepProfiling:
		return levelScreen(language)
	case model.OnboardingStepApp:
		return t.readyScreen(sess)
	default:
		return languageScreen(language)
	}
}

func (t *TelegramUsecase) readyScreen(sess *session.Session) screen {
	language := sess.Profile().Language
	modeConfig, err := catalog.Lookup(sess.Mode())
	if err != nil {
		modeConfig, _ = catalog.Lookup(model.StudyModeAdvisor)
	}
	return screen{
		text: TextReady.Format(language, modeConfig.Title.Text(language), modeConfig.Description.Text(language)),
	}
}

func languageScreen(language local.Language) screen {
	keyboard := api.NewInlineKeyboardMarkup(
		api.NewInlineKeyboardRow(
			api.NewInlineKeyboardButtonData("العربية", callbackLanguage+string(local.Ara)),
			api.NewInlineKeyboardButtonData("English", callbackLanguage+string(local.Eng)),
		),
	)
	return screen{
		text:     TextWelcome.Text(language) + "\n\n" + TextSelectLanguage.Text(language),
		keyboard: &keyboard,
	}
}

func loginScreen(language local.Language) screen {
	keyboard := api.NewInlineKeyboardMarkup(
		api.NewInlineKeyboardRow(api.NewInlineKeyboardButtonData(TextLoginGoogle.Text(language), callbackLogin+loginGoogle)),
		api.NewInlineKeyboardRow(api.NewInlineKeyboardButtonData(TextLoginEmail.Text(language), callbackLogin+loginEmail)),
		api.NewInlineKeyboardRow(api.NewInlineKeyboardButtonData(TextBack.Text(language), callbackLogin+loginBack)),
	)
	return screen{text: TextLoginTitle.Text(language), keyboard: &keyboard}
}

func levelScreen(language local.Language) screen {
	keyboard := optionsKeyboard(studyLevelOptions, callbackLevel, language)
	return screen{
		text:     TextProfiling.Text(language) + "\n\n" + TextQuestionLevel.Text(language),
		keyboard: &keyboard,
	}
}

func majorScreen(language local.Language) screen {
	keyboard := optionsKeyboard(majorOptions, callbackMajor, language)
	return screen{text: TextQuestionMajor.Text(language), keyboard: &keyboard}
}

func optionsKeyboard(options []local.TextSet, prefix string, language local.Language) api.InlineKeyboardMarkup {
	buttons := lo.Map(
		options, func(option local.TextSet, i int) api.InlineKeyboardButton {
			return api.NewInlineKeyboardButtonData(option.Text(language), prefix+strconv.Itoa(i))
		},
	)
	rows := lo.Chunk(buttons, 2)
	rows = append(rows, api.NewInlineKeyboardRow(api.NewInlineKeyboardButtonData(TextSkip.Text(language), callbackSkip)))
	return api.NewInlineKeyboardMarkup(rows...)
}

func modesScreen(language local.Language) screen {
	buttons := lo.Map(
		catalog.List(), func(mode catalog.ModeConfig, _ int) api.InlineKeyboardButton {
			return api.NewInlineKeyboardButtonData(mode.Title.Text(language), callbackMode+string(mode.ID))
		},
	)
	keyboard := api.NewInlineKeyboardMarkup(lo.Chunk(buttons, 2)...)
	return screen{text: TextStudyModes.Text(language), keyboard: &keyboard}
}

func settingsScreen(profile model.UserProfile) screen {
	language := profile.Language
	style := string(profile.DefaultStyle)
	if modeConfig, err := catalog.Lookup(profile.DefaultStyle); err == nil {
		style = modeConfig.Title.Text(language)
	}
	detail, ok := detailTexts[profile.DetailLevel]
	if !ok {
		detail = detailTexts[model.DetailLevelMedium]
	}

	toggle := func(label local.TextSet, on bool, setting string) []api.InlineKeyboardButton {
		mark := lo.Ternary(on, "✅ ", "⬜ ")
		return api.NewInlineKeyboardRow(api.NewInlineKeyboardButtonData(mark+label.Text(language), callbackSetting+setting))
	}
	button := func(text string, setting string) []api.InlineKeyboardButton {
		return api.NewInlineKeyboardRow(api.NewInlineKeyboardButtonData(text, callbackSetting+setting))
	}

	languageName := lo.Ternary(language == local.Ara, "العربية", "English")
	keyboard := api.NewInlineKeyboardMarkup(
		button(TextSettingLanguage.Text(language)+": "+languageName, settingLanguage),
		button(TextSettingTheme.Text(language)+": "+themeTexts[profile.Theme].Text(language), settingTheme),
		button(TextSettingDefaultStyle.Text(language)+": "+style, settingStyle),
		button(TextSettingDetailLevel.Text(language)+": "+detail.Text(language), settingDetail),
		toggle(TextSettingGeneralChat, profile.AllowGeneralChat, settingGeneral),
		toggle(TextSettingStrictSources, profile.StrictSourcesOnly, settingStrict),
		toggle(TextSettingSaveHistory, profile.SaveHistory, settingHistory),
		button(TextSettingClearHistory.Text(language), settingClear),
		button(TextSettingLogout.Text(language), settingLogout),
		button(TextSettingClose.Text(language), settingClose),
	)
	return screen{
		text:     TextSettingsTitle.Format(language, style, detail.Text(language)),
		keyboard: &keyboard,
	}
}

// splitMessage cuts text into chunks of at most limit UTF-16 code units,
// the unit Telegram measures message length in, preferring to break after
// a newline.
func splitMessage(text string, limit int) []string {
	var chunks []string
	runes := []rune(text)
	for {
		size, end, lastBreak := 0, 0, 0
		for ; end < len(runes); end++ {
			n := utf16.RuneLen(runes[end])
			if n < 0 {
				n = 1
			}
			if size+n > limit {
				break
			}
			size += n
			if runes[end] == '\n' {
				lastBreak = end + 1
			}
		}
		if end == len(runes) {
			return append(chunks, string(runes))
		}
		if lastBreak > end/2 {
			end = lastBreak
		}
		end = max(end, 1)
		chunks = append(chunks, string(runes[:end]))
		runes = runes[end:]
	}
}

func (t *TelegramUsecase) sendMessageAndHandleErr(chatID int64, message string) api.Message {
	msg, err := t.sendMessage(chatID, message)
	if err != nil {
		t.Logger.Error("failed to send new message to bot", zap.Int64("chat_id", chatID), zap.Error(err))
	}
	return msg
}

func (t *TelegramUsecase) sendMessage(chatID int64, message string) (api.Message, error) {
	return t.Bot.Send(api.NewMessage(chatID, message))
}
