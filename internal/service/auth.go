package service

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"crave/internal/domain"
)

var (
	ErrUsernameTaken      = errors.New("username already exists")
	ErrEmailTaken         = errors.New("email already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")
)

// AuthService owns account creation and credential checks. Passwords are
// bcrypt-hashed before they reach the store.
type AuthService struct {
	store Store
}

func NewAuthService(store Store) *AuthService {
	return &AuthService{store: store}
}

// Register creates an account after checking that neither the username nor
// the email is already taken.
func (a *AuthService) Register(in domain.CreateUser) (domain.User, error) {
	if _, exists := a.store.GetUserByUsername(in.Username); exists {
		return domain.User{}, ErrUsernameTaken
	}
	if _, exists := a.store.GetUserByEmail(in.Email); exists {
		return domain.User{}, ErrEmailTaken
	}

	hashed, err := HashPassword(in.Password)
	if err != nil {
		return domain.User{}, err
	}
	in.Password = hashed
	return a.store.CreateUser(in), nil
}

// Login resolves the identifier as a username first, then as an email, and
// verifies the password. ErrUserNotFound and ErrInvalidCredentials both map
// to 401 at the API boundary but carry distinct messages.
func (a *AuthService) Login(identifier, password string) (domain.User, error) {
	user, ok := a.store.GetUserByUsername(identifier)
	if !ok {
		user, ok = a.store.GetUserByEmail(identifier)
	}
	if !ok {
		return domain.User{}, ErrUserNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return domain.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// WalletLogin finds the account bound to the wallet address, creating a
// customer account with a synthesized identity on first sight. The generated
// password is random and never disclosed; the wallet is the only login key.
func (a *AuthService) WalletLogin(walletAddress string) (domain.User, error) {
	if user, ok := a.store.GetUserByWalletAddress(walletAddress); ok {
		return user, nil
	}

	hashed, err := HashPassword(uuid.NewString())
	if err != nil {
		return domain.User{}, err
	}
	short := walletAddress
	if len(short) > 8 {
		short = short[:8]
	}
	return a.store.CreateUser(domain.CreateUser{
		Username:      fmt.Sprintf("wallet_%s", short),
		Password:      hashed,
		Email:         fmt.Sprintf("%s@wallet.user", short),
		Name:          fmt.Sprintf("Wallet User %s", truncate(walletAddress, 6)),
		Role:          domain.RoleCustomer,
		WalletAddress: walletAddress,
	}), nil
}

// ChangePassword hashes and stores a new password for the user.
func (a *AuthService) ChangePassword(userID int, password string) error {
	hashed, err := HashPassword(password)
	if err != nil {
		return err
	}
	if !a.store.SetUserPassword(userID, hashed) {
		return ErrUserNotFound
	}
	return nil
}

func HashPassword(pw string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(bytes), err
}

func truncate(s string, n int) string {
	if len(s) > n {
		return s[:n]
	}
	return s
}
