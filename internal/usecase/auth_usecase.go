package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"foodorder/internal/domain/model"
	"foodorder/internal/repository"

	"github.com/sirupsen/logrus"
)

const (
	msgInvalidData        = "Invalid data"
	msgUsernameTaken      = "Username already exists"
	msgInvalidCredentials = "Invalid username or password"
)

type RegisterInput struct {
	Username string
	Password string
}

type RegisterOutput struct {
	Message string `json:"message"`
}

type LoginInput struct {
	Username string
	Password string
}

// handlerがJSONにして返す
type LoginOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"-"`
}

type AuthUsecase struct {
	users     repository.UserRepository
	hasher    PasswordHasher
	verifier  PasswordVerifier
	issuer    TokenIssuer
	idGen     IDGenerator
	clock     Clock
	validator AuthValidator
	log       logrus.FieldLogger
}

// DI
func NewAuthUsecase(
	users repository.UserRepository,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	issuer TokenIssuer,
	idGen IDGenerator,
	clock Clock,
	validator AuthValidator,
	log logrus.FieldLogger,
) *AuthUsecase {
	return &AuthUsecase{
		users:     users,
		hasher:    hasher,
		verifier:  verifier,
		issuer:    issuer,
		idGen:     idGen,
		clock:     clock,
		validator: validator,
		log:       log,
	}
}

// 会員登録
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (RegisterOutput, error) {
	//入力検証（validatorに寄せる）
	if err := u.validator.ValidateRegister(ctx, in.Username, in.Password); err != nil {
		return RegisterOutput{}, err
	}
	username := strings.TrimSpace(in.Username)

	//username重複チェック
	existing, err := u.users.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return RegisterOutput{}, conflictError(msgUsernameTaken)
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		u.log.WithError(err).Error("find user by username failed")
		return RegisterOutput{}, internalError("Error registering user")
	}

	//パスワードは必ずハッシュ化して保存（平文保存しない）
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		u.log.WithError(err).Error("hash password failed")
		return RegisterOutput{}, internalError("Error registering user")
	}

	user := &model.User{
		ID:           u.idGen.NewID(),
		Username:     username,
		PasswordHash: hashed,
		CreatedAt:    u.clock.Now(),
	}

	//同時登録はDBのユニーク制約で弾く
	if err := u.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return RegisterOutput{}, conflictError(msgUsernameTaken)
		}
		u.log.WithError(err).Error("create user failed")
		return RegisterOutput{}, internalError("Error registering user")
	}

	u.log.WithField("user_id", user.ID).Info("user registered")
	return RegisterOutput{Message: "User registered successfully"}, nil
}

// ログインしてセッショントークンを返す
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	if err := u.validator.ValidateLogin(ctx, in.Username, in.Password); err != nil {
		return LoginOutput{}, err
	}

	//ユーザー取得
	user, err := u.users.FindByUsername(ctx, strings.TrimSpace(in.Username))
	if errors.Is(err, repository.ErrNotFound) || (err == nil && user == nil) {
		return LoginOutput{}, authError(msgInvalidCredentials)
	}
	if err != nil {
		u.log.WithError(err).Error("find user by username failed")
		return LoginOutput{}, internalError("Error logging in user")
	}

	//パスワード照合（bcrypt）
	if !u.verifier.Verify(in.Password, user.PasswordHash) {
		return LoginOutput{}, authError(msgInvalidCredentials)
	}

	//access token発行
	signed, expiresAt, err := u.issuer.Issue(user.ID, u.clock.Now())
	if err != nil {
		u.log.WithError(err).Error("issue token failed")
		return LoginOutput{}, internalError("Error logging in user")
	}

	return LoginOutput{Token: signed, ExpiresAt: expiresAt}, nil
}
