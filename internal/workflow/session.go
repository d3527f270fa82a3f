package workflow

import (
	"fmt"

	"github.com/google/uuid"

	"velvessa/m/domain"
)

// Sentinels substituted for empty login inputs, matching the seeded
// administrator account.
const (
	defaultEmail    = "admin"
	defaultPassword = "admin"
)

// Login authenticates against the user directory with an exact,
// case-sensitive credential match. Only approved accounts get in; a
// successful login becomes the session user and is audited.
func (s *Service) Login(email, password string) (domain.User, error) {
	if email == "" {
		email = defaultEmail
	}
	if password == "" {
		password = defaultPassword
	}

	var match *domain.User
	for _, u := range s.store.Users() {
		if u.Email == email && u.Password == password {
			match = &u
			break
		}
	}
	if match == nil {
		return domain.User{}, ErrInvalidCredentials
	}
	if match.Status != domain.StatusApproved {
		return domain.User{}, &AccessDeniedError{Status: match.Status}
	}

	s.store.SetCurrentUser(match)
	s.AddLog("Login", "Logged into the system")
	return *match, nil
}

// Register creates a pending account. Registration is open: no caller
// authentication, and any status hint in the input is ignored.
func (s *Service) Register(input domain.User) (domain.User, error) {
	for _, u := range s.store.Users() {
		if u.Email == input.Email {
			return domain.User{}, ErrDuplicateEmail
		}
	}

	user := domain.User{
		ID:       "u-" + uuid.NewString(),
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
		Role:     input.Role,
		Status:   domain.StatusPending,
		Phone:    input.Phone,
	}
	if user.Password == "" {
		user.Password = "password"
	}
	if user.Role == "" {
		user.Role = domain.RoleSales
	}

	s.store.ReplaceUsers(func(users []domain.User) []domain.User {
		return append(users, user)
	})
	return user, nil
}

// UpdateUserStatus overwrites the target account's approval status.
// Role gating happens at the API boundary; nothing here stops an
// admin from re-pending an active account.
func (s *Service) UpdateUserStatus(userID string, status domain.UserStatus) error {
	found := false
	s.store.ReplaceUsers(func(users []domain.User) []domain.User {
		for i := range users {
			if users[i].ID == userID {
				users[i].Status = status
				found = true
			}
		}
		return users
	})
	if !found {
		return ErrUserNotFound
	}
	s.AddLog("User Approval", fmt.Sprintf("User %s status updated to %s", userID, status))
	return nil
}

// UpdateProfile merges the non-empty fields of input into the session
// user and writes the result back into the directory. No field format
// validation is applied.
func (s *Service) UpdateProfile(input domain.User) (domain.User, error) {
	current := s.store.CurrentUser()
	if current == nil {
		return domain.User{}, ErrNoSession
	}

	updated := *current
	if input.Name != "" {
		updated.Name = input.Name
	}
	if input.Email != "" {
		updated.Email = input.Email
	}
	if input.Password != "" {
		updated.Password = input.Password
	}
	if input.Phone != "" {
		updated.Phone = input.Phone
	}
	if input.ProfileImage != "" {
		updated.ProfileImage = input.ProfileImage
	}

	s.store.SetCurrentUser(&updated)
	s.store.ReplaceUsers(func(users []domain.User) []domain.User {
		for i := range users {
			if users[i].ID == updated.ID {
				users[i] = updated
			}
		}
		return users
	})
	s.AddLog("Update Profile", "Updated personal profile details")
	return updated, nil
}

// Logout clears the session user.
func (s *Service) Logout() {
	s.store.SetCurrentUser(nil)
}
