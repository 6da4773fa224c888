package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/domain/entity"
	"portal/internal/domain/repository"
	"portal/internal/domain/service"
	"portal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	channelLive  = "live"
	channelPush  = "push"
	channelEmail = "email"
	channelSMS   = "sms"

	defaultChannelTimeout   = 5 * time.Second
	defaultRecipientWorkers = 8

	messagePreviewLimit = 140
)

// fanoutService implements the FanoutUsecase interface. It persists one
// notification per eligible recipient and then pushes it over the recipient's
// enabled channels. External channel failures are captured in the dispatch
// results and logged, never returned to the triggering operation.
type fanoutService struct {
	notificationRepo repository.NotificationRepository
	userRepo         repository.UserRepository
	live             service.LivePublisher
	pushSink         service.PushSink
	emailSink        service.EmailSink
	smsSink          service.SMSSink
	publisher        service.EventPublisher
	channelTimeout   time.Duration
	recipientWorkers int
	logger           *slog.Logger
}

// FanoutServiceParams holds dependencies for FanoutService, injected by Fx.
// The external sinks and the event publisher are optional; a missing sink
// disables its channel.
type FanoutServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	UserRepo         repository.UserRepository
	Live             service.LivePublisher
	PushSink         service.PushSink       `optional:"true"`
	EmailSink        service.EmailSink      `optional:"true"`
	SMSSink          service.SMSSink        `optional:"true"`
	Publisher        service.EventPublisher `optional:"true"`
	Config           *config.Config
	Logger           *slog.Logger
}

// NewFanoutService is the constructor for fanoutService.
func NewFanoutService(params FanoutServiceParams) usecase.FanoutUsecase {
	channelTimeout := defaultChannelTimeout
	recipientWorkers := defaultRecipientWorkers
	if params.Config != nil && params.Config.Fanout != nil {
		if params.Config.Fanout.ChannelTimeout > 0 {
			channelTimeout = params.Config.Fanout.ChannelTimeout
		}
		if params.Config.Fanout.RecipientWorkers > 0 {
			recipientWorkers = params.Config.Fanout.RecipientWorkers
		}
	}

	return &fanoutService{
		notificationRepo: params.NotificationRepo,
		userRepo:         params.UserRepo,
		live:             params.Live,
		pushSink:         params.PushSink,
		emailSink:        params.EmailSink,
		smsSink:          params.SMSSink,
		publisher:        params.Publisher,
		channelTimeout:   channelTimeout,
		recipientWorkers: recipientWorkers,
		logger:           params.Logger,
	}
}

func (srv *fanoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// OnNewMessage fans a new message out to the other conversation members.
// Muted and mention-only members are skipped entirely unless mentioned; a
// mention always notifies.
func (srv *fanoutService) OnNewMessage(ctx context.Context, conversation *entity.Conversation, message *entity.Message) ([]usecase.DispatchResult, error) {
	sender, err := srv.userRepo.FindByID(ctx, message.SenderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve message sender")
	}

	type target struct {
		member    entity.ConversationMember
		mentioned bool
	}

	targets := make([]target, 0, len(conversation.Members))
	skipped := make([]usecase.DispatchResult, 0)
	for _, member := range conversation.Members {
		if member.UserID == message.SenderID {
			continue
		}
		mentioned := message.MentionsUser(member.UserID)
		if !member.WantsNotification(mentioned) {
			skipped = append(skipped, usecase.DispatchResult{
				RecipientID: member.UserID,
				Channels:    []usecase.ChannelResult{{Channel: channelLive, Outcome: usecase.OutcomeSkippedMuted}},
			})

			continue
		}
		targets = append(targets, target{member: member, mentioned: mentioned})
	}

	if len(targets) == 0 {
		return skipped, nil
	}

	recipientIDs := make([]uuid.UUID, 0, len(targets))
	for _, t := range targets {
		recipientIDs = append(recipientIDs, t.member.UserID)
	}
	recipients, err := srv.userRepo.FindByIDs(ctx, recipientIDs)
	if err != nil {
		return skipped, errors.Wrap(err, "failed to resolve message recipients")
	}
	recipientByID := make(map[uuid.UUID]*entity.User, len(recipients))
	for _, recipient := range recipients {
		recipientByID[recipient.ID] = recipient
	}

	data := map[string]any{
		"conversation_id": conversation.ID.String(),
		"message_id":      message.ID.String(),
		"sender_id":       sender.ID.String(),
	}

	results := srv.forEachRecipient(ctx, len(targets), func(ctx context.Context, i int) usecase.DispatchResult {
		t := targets[i]
		recipient, ok := recipientByID[t.member.UserID]
		if !ok {
			return usecase.DispatchResult{
				RecipientID: t.member.UserID,
				Channels:    []usecase.ChannelResult{{Channel: channelLive, Outcome: usecase.OutcomeFailed, Error: "recipient not found"}},
			}
		}

		notificationType := entity.NotificationTypeNewMessage
		title := "New message in " + conversation.DisplayName()
		if t.mentioned {
			notificationType = entity.NotificationTypeMention
			title = sender.DisplayName() + " mentioned you in " + conversation.DisplayName()
		}

		return srv.notifyOne(ctx, recipient, notificationType, title, preview(sender.DisplayName(), message), data)
	})

	return append(skipped, results...), nil
}

// OnReaction notifies a message's sender that someone reacted to it.
// Reacting to your own message is not notified.
func (srv *fanoutService) OnReaction(ctx context.Context, conversation *entity.Conversation, message *entity.Message, reaction *entity.Reaction) ([]usecase.DispatchResult, error) {
	if reaction.UserID == message.SenderID {
		return nil, nil
	}

	reactor, err := srv.userRepo.FindByID(ctx, reaction.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve reactor")
	}
	recipient, err := srv.userRepo.FindByID(ctx, message.SenderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve reaction recipient")
	}

	result := srv.notifyOne(ctx, recipient, entity.NotificationTypeNewReaction,
		reactor.DisplayName()+" reacted "+reaction.Emoji+" in "+conversation.DisplayName(),
		"",
		map[string]any{
			"conversation_id": conversation.ID.String(),
			"message_id":      message.ID.String(),
			"reaction_id":     reaction.ID.String(),
			"emoji":           reaction.Emoji,
		})

	return []usecase.DispatchResult{result}, nil
}

// NotifyMemberAdded notifies a user that they were added to a conversation.
func (srv *fanoutService) NotifyMemberAdded(ctx context.Context, conversation *entity.Conversation, actorID, memberID uuid.UUID) ([]usecase.DispatchResult, error) {
	actor, recipient, err := srv.resolvePair(ctx, actorID, memberID)
	if err != nil {
		return nil, err
	}

	result := srv.notifyOne(ctx, recipient, entity.NotificationTypeAddedToConversation,
		"Added to "+conversation.DisplayName(),
		actor.DisplayName()+" added you to "+conversation.DisplayName(),
		map[string]any{
			"conversation_id": conversation.ID.String(),
			"actor_id":        actorID.String(),
		})

	return []usecase.DispatchResult{result}, nil
}

// NotifyMemberRemoved notifies a user that they were removed from a conversation.
func (srv *fanoutService) NotifyMemberRemoved(ctx context.Context, conversation *entity.Conversation, actorID, memberID uuid.UUID) ([]usecase.DispatchResult, error) {
	actor, recipient, err := srv.resolvePair(ctx, actorID, memberID)
	if err != nil {
		return nil, err
	}

	result := srv.notifyOne(ctx, recipient, entity.NotificationTypeRemovedFromConversation,
		"Removed from "+conversation.DisplayName(),
		actor.DisplayName()+" removed you from "+conversation.DisplayName(),
		map[string]any{
			"conversation_id": conversation.ID.String(),
			"actor_id":        actorID.String(),
		})

	return []usecase.DispatchResult{result}, nil
}

// NotifyConversationArchived notifies the remaining members that a
// conversation was archived.
func (srv *fanoutService) NotifyConversationArchived(ctx context.Context, conversation *entity.Conversation, actorID uuid.UUID) ([]usecase.DispatchResult, error) {
	recipientIDs := make([]uuid.UUID, 0, len(conversation.Members))
	for _, member := range conversation.Members {
		if member.UserID != actorID {
			recipientIDs = append(recipientIDs, member.UserID)
		}
	}
	if len(recipientIDs) == 0 {
		return nil, nil
	}

	recipients, err := srv.userRepo.FindByIDs(ctx, recipientIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve archive recipients")
	}

	data := map[string]any{
		"conversation_id": conversation.ID.String(),
		"actor_id":        actorID.String(),
	}

	results := srv.forEachRecipient(ctx, len(recipients), func(ctx context.Context, i int) usecase.DispatchResult {
		return srv.notifyOne(ctx, recipients[i], entity.NotificationTypeConversationArchived,
			conversation.DisplayName()+" was archived",
			"The conversation is now read-only.",
			data)
	})

	return results, nil
}

// NotifyApprovalStatus notifies a user of the decision on their registration.
func (srv *fanoutService) NotifyApprovalStatus(ctx context.Context, user *entity.User, approved bool) ([]usecase.DispatchResult, error) {
	title := "Registration approved"
	body := "Welcome! Your account has been approved."
	if !approved {
		title = "Registration declined"
		body = "Your registration was declined. Contact a program admin for details."
	}

	result := srv.notifyOne(ctx, user, entity.NotificationTypeApprovalStatus, title, body, map[string]any{
		"approved": approved,
	})

	return []usecase.DispatchResult{result}, nil
}

// notifyOne persists one notification and pushes it over the recipient's
// enabled channels.
func (srv *fanoutService) notifyOne(ctx context.Context, recipient *entity.User, notificationType entity.NotificationType, title, body string, data map[string]any) usecase.DispatchResult {
	notification := &entity.Notification{
		ID:          uuid.New(),
		RecipientID: recipient.ID,
		Type:        notificationType,
		Title:       title,
		Body:        body,
		Data:        data,
		CreatedAt:   time.Now(),
	}

	result := usecase.DispatchResult{
		RecipientID:    recipient.ID,
		NotificationID: notification.ID,
	}

	if err := srv.notificationRepo.Create(ctx, notification); err != nil {
		srv.log(ctx).Error("Failed to persist notification",
			slog.Any("recipientID", recipient.ID), slog.Any("type", notificationType), slog.Any("error", err))
		result.Channels = append(result.Channels, usecase.ChannelResult{
			Channel: channelLive, Outcome: usecase.OutcomeFailed, Error: err.Error(),
		})

		return result
	}

	result.Channels = append(result.Channels, srv.dispatchLive(notification, recipient))

	if srv.publisher != nil {
		result.Channels = append(result.Channels, srv.enqueueExternal(ctx, notification, recipient)...)

		return result
	}

	channels, err := srv.DispatchChannels(ctx, notification, recipient)
	if err != nil {
		srv.log(ctx).Error("Channel dispatch failed", slog.Any("notificationID", notification.ID), slog.Any("error", err))
	}
	result.Channels = append(result.Channels, channels...)

	return result
}

// dispatchLive pushes the notification to the recipient's live sessions.
// Live delivery is always attempted; preferences gate only the external
// channels.
func (srv *fanoutService) dispatchLive(notification *entity.Notification, recipient *entity.User) usecase.ChannelResult {
	delivered := srv.live.PublishToUser(recipient.ID, service.LiveEvent{
		Type:    "newNotification",
		Payload: notification,
	})
	if !delivered {
		return usecase.ChannelResult{Channel: channelLive, Outcome: usecase.OutcomeSkippedOffline}
	}

	return usecase.ChannelResult{Channel: channelLive, Outcome: usecase.OutcomeDelivered}
}

// enqueueExternal hands the external channels to the dispatch worker.
func (srv *fanoutService) enqueueExternal(ctx context.Context, notification *entity.Notification, recipient *entity.User) []usecase.ChannelResult {
	event := &service.NotificationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID.String(),
		RecipientID:    recipient.ID.String(),
		Type:           notification.Type.String(),
		Title:          notification.Title,
		Body:           notification.Body,
		Data:           stringifyData(notification.Data),
	}

	if err := srv.publisher.PublishNotificationEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to enqueue notification event", slog.Any("notificationID", notification.ID), slog.Any("error", err))

		// Fall back to inline dispatch rather than dropping the channels.
		channels, dispatchErr := srv.DispatchChannels(ctx, notification, recipient)
		if dispatchErr != nil {
			srv.log(ctx).Error("Inline fallback dispatch failed", slog.Any("notificationID", notification.ID), slog.Any("error", dispatchErr))
		}

		return channels
	}

	return []usecase.ChannelResult{
		{Channel: channelPush, Outcome: usecase.OutcomeQueued},
		{Channel: channelEmail, Outcome: usecase.OutcomeQueued},
		{Channel: channelSMS, Outcome: usecase.OutcomeQueued},
	}
}

// DispatchChannels delivers an already persisted notification over the
// recipient's enabled external channels. Each channel gets a bounded timeout.
func (srv *fanoutService) DispatchChannels(ctx context.Context, notification *entity.Notification, recipient *entity.User) ([]usecase.ChannelResult, error) {
	results := make([]usecase.ChannelResult, 0, 3)
	results = append(results, srv.dispatchPush(ctx, notification, recipient))
	results = append(results, srv.dispatchEmail(ctx, notification, recipient))
	results = append(results, srv.dispatchSMS(ctx, notification, recipient))

	return results, nil
}

func (srv *fanoutService) dispatchPush(ctx context.Context, notification *entity.Notification, recipient *entity.User) usecase.ChannelResult {
	if srv.pushSink == nil || !recipient.Preferences.Push {
		return usecase.ChannelResult{Channel: channelPush, Outcome: usecase.OutcomeSkippedPreference}
	}
	tokens := recipient.PushTokens()
	if len(tokens) == 0 {
		return usecase.ChannelResult{Channel: channelPush, Outcome: usecase.OutcomeSkippedPreference, Error: "no registered devices"}
	}

	sendCtx, cancel := context.WithTimeout(ctx, srv.channelTimeout)
	defer cancel()

	successCount, _, invalidTokens, err := srv.pushSink.SendBatch(sendCtx, tokens, notification.Title, notification.Body, stringifyData(notification.Data))

	// Expired endpoints are pruned regardless of the overall outcome.
	if len(invalidTokens) > 0 {
		if pruneErr := srv.userRepo.RemovePushSubscriptions(ctx, recipient.ID, invalidTokens); pruneErr != nil {
			srv.log(ctx).Warn("Failed to prune invalid push tokens", slog.Any("recipientID", recipient.ID), slog.Any("error", pruneErr))
		}
	}

	if err != nil {
		srv.log(ctx).Warn("Push delivery failed", slog.Any("notificationID", notification.ID), slog.Any("error", err))

		return usecase.ChannelResult{Channel: channelPush, Outcome: usecase.OutcomeFailed, Error: err.Error()}
	}
	if successCount == 0 {
		return usecase.ChannelResult{Channel: channelPush, Outcome: usecase.OutcomeFailed, Error: "no endpoint accepted the notification"}
	}

	return usecase.ChannelResult{Channel: channelPush, Outcome: usecase.OutcomeDelivered}
}

func (srv *fanoutService) dispatchEmail(ctx context.Context, notification *entity.Notification, recipient *entity.User) usecase.ChannelResult {
	if srv.emailSink == nil || !recipient.Preferences.Email {
		return usecase.ChannelResult{Channel: channelEmail, Outcome: usecase.OutcomeSkippedPreference}
	}

	sendCtx, cancel := context.WithTimeout(ctx, srv.channelTimeout)
	defer cancel()

	if err := srv.emailSink.Send(sendCtx, recipient.Email, notification.Title, notification.Body, ""); err != nil {
		srv.log(ctx).Warn("Email delivery failed", slog.Any("notificationID", notification.ID), slog.Any("error", err))

		return usecase.ChannelResult{Channel: channelEmail, Outcome: usecase.OutcomeFailed, Error: err.Error()}
	}

	return usecase.ChannelResult{Channel: channelEmail, Outcome: usecase.OutcomeDelivered}
}

func (srv *fanoutService) dispatchSMS(ctx context.Context, notification *entity.Notification, recipient *entity.User) usecase.ChannelResult {
	// SMS is reserved for important notifications.
	if srv.smsSink == nil || !recipient.Preferences.SMS || !notification.Type.Important() {
		return usecase.ChannelResult{Channel: channelSMS, Outcome: usecase.OutcomeSkippedPreference}
	}
	if recipient.Phone == "" {
		return usecase.ChannelResult{Channel: channelSMS, Outcome: usecase.OutcomeSkippedPreference, Error: "no phone number on file"}
	}

	sendCtx, cancel := context.WithTimeout(ctx, srv.channelTimeout)
	defer cancel()

	if err := srv.smsSink.Send(sendCtx, recipient.Phone, notification.Title+": "+notification.Body); err != nil {
		srv.log(ctx).Warn("SMS delivery failed", slog.Any("notificationID", notification.ID), slog.Any("error", err))

		return usecase.ChannelResult{Channel: channelSMS, Outcome: usecase.OutcomeFailed, Error: err.Error()}
	}

	return usecase.ChannelResult{Channel: channelSMS, Outcome: usecase.OutcomeDelivered}
}

// forEachRecipient runs fn for every recipient index with bounded concurrency
// and collects the results in input order.
func (srv *fanoutService) forEachRecipient(ctx context.Context, count int, fn func(ctx context.Context, i int) usecase.DispatchResult) []usecase.DispatchResult {
	results := make([]usecase.DispatchResult, count)

	var wg sync.WaitGroup
	sem := make(chan struct{}, srv.recipientWorkers)
	for i := 0; i < count; i++ {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			results[i] = fn(ctx, i)
		}(i)
	}
	wg.Wait()

	return results
}

func (srv *fanoutService) resolvePair(ctx context.Context, actorID, recipientID uuid.UUID) (*entity.User, *entity.User, error) {
	actor, err := srv.userRepo.FindByID(ctx, actorID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to resolve actor")
	}
	recipient, err := srv.userRepo.FindByID(ctx, recipientID)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to resolve recipient")
	}

	return actor, recipient, nil
}

// preview builds the notification body for a message: the sender name plus a
// truncated excerpt, or an attachment hint when the body is empty.
func preview(senderName string, message *entity.Message) string {
	body := message.Body
	if body == "" {
		return senderName + " sent an attachment"
	}
	if len(body) > messagePreviewLimit {
		cut := messagePreviewLimit
		// Back up to a rune boundary so the excerpt stays valid UTF-8.
		for cut > 0 && !utf8.RuneStart(body[cut]) {
			cut--
		}
		body = body[:cut] + "..."
	}

	return senderName + ": " + body
}

func stringifyData(data map[string]any) map[string]string {
	if len(data) == 0 {
		return nil
	}
	out := make(map[string]string, len(data))
	for k, v := range data {
		if s, ok := v.(string); ok {
			out[k] = s

			continue
		}
		if b, ok := v.(bool); ok {
			if b {
				out[k] = "true"
			} else {
				out[k] = "false"
			}
		}
	}

	return out
}
