// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/repository"
	"portal/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a repository.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user entity together with its credential hash.
func (repo *userRepository) Create(ctx context.Context, user *entity.User, passwordHash string) error {
	userM := fromUserDomain(user)
	userM.PasswordHash = passwordHash

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email or username already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// FindByID retrieves a single user by their unique ID, preloading push subscriptions.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Subscriptions").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByIDs retrieves users for the given IDs in one round trip. Missing IDs are skipped.
func (repo *userRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var userModels []*model.UserModel
	if err := repo.db.WithContext(ctx).
		Preload("Subscriptions").
		Where("id IN ?", ids).
		Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find users by ids")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// FindByEmail retrieves a single user by their email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Subscriptions").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// List retrieves all users, optionally filtered by approval status.
func (repo *userRepository) List(ctx context.Context, status *entity.UserStatus) ([]*entity.User, error) {
	var userModels []*model.UserModel

	query := repo.db.WithContext(ctx).Order("created_at ASC")
	if status != nil {
		query = query.Where("status = ?", string(*status))
	}

	if err := query.Find(&userModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.User, 0, len(userModels))
	for _, userM := range userModels {
		users = append(users, toUserDomain(userM))
	}

	return users, nil
}

// FindPasswordHash retrieves the credential hash for login verification.
func (repo *userRepository) FindPasswordHash(ctx context.Context, userID uuid.UUID) (string, error) {
	var hash string

	if err := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Select("password_hash").
		Where("id = ?", userID).
		Take(&hash).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrUserNotFound
		}

		return "", errors.Wrap(err, "failed to find password hash")
	}

	return hash, nil
}

// UpdatePreferences replaces the notification preferences of a user.
func (repo *userRepository) UpdatePreferences(ctx context.Context, userID uuid.UUID, prefs entity.NotificationPreferences) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"pref_email":  prefs.Email,
			"pref_push":   prefs.Push,
			"pref_in_app": prefs.InApp,
			"pref_sms":    prefs.SMS,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update preferences")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// UpdateStatus sets the approval status of a user.
func (repo *userRepository) UpdateStatus(ctx context.Context, userID uuid.UUID, status entity.UserStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Update("status", string(status))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// SetPresence records the online flag and last-active timestamp of a user.
func (repo *userRepository) SetPresence(ctx context.Context, userID uuid.UUID, online bool, lastActiveAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"online":         online,
			"last_active_at": lastActiveAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to set presence")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// AddPushSubscription registers a device endpoint for push delivery.
func (repo *userRepository) AddPushSubscription(ctx context.Context, sub *entity.PushSubscription) error {
	subM := &model.PushSubscriptionModel{
		ID:       sub.ID,
		UserID:   sub.UserID,
		Token:    sub.Token,
		Platform: sub.Platform,
	}

	if err := repo.db.WithContext(ctx).Create(subM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrPushSubscriptionExists
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to add push subscription")
	}

	sub.ID = subM.ID
	sub.CreatedAt = subM.CreatedAt

	return nil
}

// RemovePushSubscriptions deletes the subscriptions holding the given tokens.
func (repo *userRepository) RemovePushSubscriptions(ctx context.Context, userID uuid.UUID, tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}

	if err := repo.db.WithContext(ctx).
		Where("user_id = ? AND token IN ?", userID, tokens).
		Delete(&model.PushSubscriptionModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to remove push subscriptions")
	}

	return nil
}

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	subs := make([]entity.PushSubscription, 0, len(data.Subscriptions))
	for _, subM := range data.Subscriptions {
		subs = append(subs, entity.PushSubscription{
			ID:        subM.ID,
			UserID:    subM.UserID,
			Token:     subM.Token,
			Platform:  subM.Platform,
			CreatedAt: subM.CreatedAt,
		})
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Username:  data.Username,
		FirstName: data.FirstName,
		LastName:  data.LastName,
		Role:      entity.Role(data.Role),
		Phone:     data.Phone,
		Status:    entity.UserStatus(data.Status),
		Preferences: entity.NotificationPreferences{
			Email: data.PrefEmail,
			Push:  data.PrefPush,
			InApp: data.PrefInApp,
			SMS:   data.PrefSMS,
		},
		Subscriptions: subs,
		Online:        data.Online,
		LastActiveAt:  data.LastActiveAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromUserDomain converts a domain User entity to a GORM UserModel for persistence.
// Push subscriptions are managed through their own operations and are not written here.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Username:     data.Username,
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Role:         data.Role.String(),
		Phone:        data.Phone,
		Status:       string(data.Status),
		PrefEmail:    data.Preferences.Email,
		PrefPush:     data.Preferences.Push,
		PrefInApp:    data.Preferences.InApp,
		PrefSMS:      data.Preferences.SMS,
		Online:       data.Online,
		LastActiveAt: data.LastActiveAt,
	}
}
