package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/kendall-kelly/renovation-manager-api/models"
	"golang.org/x/crypto/bcrypt"
)

// ErrNotAuthenticated is returned by operations that need a logged-in user
var ErrNotAuthenticated = errors.New("no user is logged in")

// storedUser is the persisted form of a directory entry. Unlike API
// responses it carries the password hash.
type storedUser struct {
	models.User
	PasswordHash string `json:"passwordHash"`
}

func toStored(u models.User) storedUser {
	return storedUser{User: u.Clone(), PasswordHash: u.PasswordHash}
}

func (s storedUser) user() models.User {
	u := s.User.Clone()
	u.PasswordHash = s.PasswordHash
	return u
}

// SessionService owns the user directory and the current-user collection
type SessionService struct {
	users   *syncedCollection[[]storedUser]
	current *syncedCollection[*models.User]
	store   KVStore
}

// NewSessionService creates a session service persisting to store. The
// directory is seeded by seedUsers; nobody is logged in initially.
func NewSessionService(store KVStore, seedUsers func() []models.User) *SessionService {
	seedStored := func() []storedUser {
		seeded := seedUsers()
		out := make([]storedUser, len(seeded))
		for i, u := range seeded {
			out[i] = toStored(u)
		}
		return out
	}
	cloneStored := func(in []storedUser) []storedUser {
		out := make([]storedUser, len(in))
		for i, u := range in {
			out[i] = toStored(u.user())
		}
		return out
	}
	cloneCurrent := func(u *models.User) *models.User {
		if u == nil {
			return nil
		}
		c := u.Clone()
		return &c
	}

	return &SessionService{
		users:   newSyncedCollection(KeyUsers, store, seedStored, cloneStored),
		current: newSyncedCollection(KeyCurrentUser, store, func() *models.User { return nil }, cloneCurrent),
		store:   store,
	}
}

// Hydrate loads the user directory and the current user. A profile image
// stored under the legacy profileImage key is adopted when the current user
// has none. The first persistence warning is returned.
func (s *SessionService) Hydrate(ctx context.Context) error {
	usersErr := s.users.Hydrate(ctx)
	currentErr := s.current.Hydrate(ctx)

	legacy, ok := s.legacyProfileImage(ctx)
	if ok {
		s.current.mu.Lock()
		if u := s.current.value; u != nil && u.ProfileImage == nil {
			u.ProfileImage = &legacy
		}
		s.current.mu.Unlock()
	}
	return firstError(usersErr, currentErr)
}

// legacyProfileImage reads the profileImage key, which older clients wrote
// either as a JSON string or as the raw image reference
func (s *SessionService) legacyProfileImage(ctx context.Context) (string, bool) {
	data, err := s.store.Get(ctx, KeyProfileImage)
	if err != nil || len(data) == 0 {
		return "", false
	}
	var image string
	if json.Unmarshal(data, &image) != nil {
		image = string(data)
	}
	return image, image != ""
}

// Current returns the logged-in user
func (s *SessionService) Current() (models.User, error) {
	u := s.current.Get()
	if u == nil {
		return models.User{}, ErrNotAuthenticated
	}
	return *u, nil
}

// Users returns the user directory without password hashes
func (s *SessionService) Users() []models.User {
	stored := s.users.Get()
	out := make([]models.User, len(stored))
	for i, u := range stored {
		out[i] = u.User.Clone()
		out[i].PasswordHash = ""
	}
	return out
}

// Login checks the credentials against the directory and makes the user current
func (s *SessionService) Login(ctx context.Context, email, password string) (models.User, error) {
	email = strings.TrimSpace(email)
	var found *models.User
	for _, su := range s.users.Get() {
		if strings.EqualFold(su.Email, email) {
			u := su.user()
			found = &u
			break
		}
	}
	if found == nil || bcrypt.CompareHashAndPassword([]byte(found.PasswordHash), []byte(password)) != nil {
		return models.User{}, models.ErrInvalidCredentials
	}

	found.PasswordHash = ""
	_, err := s.current.Commit(ctx, func(*models.User) (*models.User, error) {
		return found, nil
	})
	return *found, err
}

// Logout clears the current user
func (s *SessionService) Logout(ctx context.Context) error {
	_, err := s.current.Commit(ctx, func(*models.User) (*models.User, error) {
		return nil, nil
	})
	return err
}

// UpdateProfile applies profile edits to the current user and the directory
func (s *SessionService) UpdateProfile(ctx context.Context, patch models.ProfilePatch) (models.User, error) {
	return s.updateCurrent(ctx, func(u models.User, directory []storedUser) (models.User, error) {
		if patch.Name != nil {
			name := strings.TrimSpace(*patch.Name)
			if name == "" {
				return u, models.NewValidationError("name", "is required")
			}
			u.Name = name
		}
		if patch.Email != nil {
			email := strings.TrimSpace(*patch.Email)
			if email == "" || !strings.Contains(email, "@") {
				return u, models.NewValidationError("email", "must be a valid email address")
			}
			for _, other := range directory {
				if other.ID != u.ID && strings.EqualFold(other.Email, email) {
					return u, models.NewValidationError("email", "is already in use")
				}
			}
			u.Email = email
		}
		if patch.Phone != nil {
			u.Phone = optionalString(*patch.Phone)
		}
		if patch.Language != nil {
			u.Language = optionalString(*patch.Language)
		}
		if patch.Timezone != nil {
			u.Timezone = optionalString(*patch.Timezone)
		}
		if patch.EmailNotifications != nil {
			v := *patch.EmailNotifications
			u.EmailNotifications = &v
		}
		if patch.TwoFactor != nil {
			v := *patch.TwoFactor
			u.TwoFactor = &v
		}
		return u, nil
	})
}

// UpdatePassword replaces the current user's password after checking the old one
func (s *SessionService) UpdatePassword(ctx context.Context, currentPassword, newPassword string) error {
	if newPassword == "" {
		return models.NewValidationError("newPassword", "is required")
	}
	_, err := s.updateCurrent(ctx, func(u models.User, directory []storedUser) (models.User, error) {
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)) != nil {
			return u, models.ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return u, err
		}
		u.PasswordHash = string(hash)
		return u, nil
	})
	return err
}

// UpdateProfileImage points the current user's avatar at imageKey and
// mirrors it to the legacy profileImage key. It returns the previous image
// reference so the caller can remove the old file.
func (s *SessionService) UpdateProfileImage(ctx context.Context, imageKey string) (models.User, string, error) {
	var previous string
	user, err := s.updateCurrent(ctx, func(u models.User, _ []storedUser) (models.User, error) {
		if u.ProfileImage != nil {
			previous = *u.ProfileImage
		}
		u.ProfileImage = optionalString(imageKey)
		return u, nil
	})
	if err != nil && !models.IsPersistence(err) {
		return models.User{}, "", err
	}

	data, _ := json.Marshal(imageKey)
	if putErr := s.store.Put(ctx, KeyProfileImage, data); putErr != nil {
		err = firstError(err, &models.PersistenceError{Key: KeyProfileImage, Op: "write", Err: putErr})
	}
	return user, previous, err
}

// updateCurrent applies fn to the directory entry of the logged-in user and
// republishes the current user from the result
func (s *SessionService) updateCurrent(ctx context.Context, fn func(models.User, []storedUser) (models.User, error)) (models.User, error) {
	current, err := s.Current()
	if err != nil {
		return models.User{}, err
	}

	var updated models.User
	_, usersErr := s.users.Commit(ctx, func(directory []storedUser) ([]storedUser, error) {
		for i, su := range directory {
			if su.ID != current.ID {
				continue
			}
			next, err := fn(su.user(), directory)
			if err != nil {
				return nil, err
			}
			updated = next
			return replaceAt(directory, i, toStored(next)), nil
		}
		return nil, models.NewNotFoundError("user", current.ID)
	})
	if usersErr != nil && !models.IsPersistence(usersErr) {
		return models.User{}, usersErr
	}

	updated.PasswordHash = ""
	_, currentErr := s.current.Commit(ctx, func(*models.User) (*models.User, error) {
		u := updated.Clone()
		return &u, nil
	})
	return updated, firstError(usersErr, currentErr)
}

// Status reports the user and current-user collections
func (s *SessionService) Status() []CollectionStatus {
	return []CollectionStatus{s.users.Status(), s.current.Status()}
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
