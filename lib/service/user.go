package service

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"

	"github.com/bennyhinn18/bank-application/db/models"
	"github.com/bennyhinn18/bank-application/lib/tokens"
	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrLoginTaken         = errors.New("login is already taken")
	ErrInvalidCredentials = errors.New("invalid login or password")
)

// CreateUser registers a new identity and its single account in one database
// transaction. A failed registration leaves no rows behind.
func (svc *BankService) CreateUser(ctx context.Context, login string, password string) (user *models.User, account *models.Account, err error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}

	user = &models.User{
		Login:    login,
		Password: string(hashed),
	}
	account = &models.Account{
		AccountType: svc.Config.DefaultAccountType,
		Balance:     decimal.Zero,
	}

	err = svc.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.User)(nil)).
			Where("login = ?", login).
			Exists(ctx)
		if err != nil {
			return err
		}
		if exists {
			return ErrLoginTaken
		}
		if _, err := tx.NewInsert().Model(user).Exec(ctx); err != nil {
			return err
		}
		account.UserID = user.ID
		_, err = tx.NewInsert().Model(account).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	return user, account, nil
}

func (svc *BankService) FindUser(ctx context.Context, userId int64) (*models.User, error) {
	var user models.User

	err := svc.DB.NewSelect().Model(&user).Where("id = ?", userId).Limit(1).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (svc *BankService) FindUserByLogin(ctx context.Context, login string) (*models.User, error) {
	var user models.User

	err := svc.DB.NewSelect().Model(&user).Where("login = ?", login).Limit(1).Scan(ctx)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// AuthenticateUser checks a login/password pair. Both an unknown login and a
// wrong password come back as ErrInvalidCredentials.
func (svc *BankService) AuthenticateUser(ctx context.Context, login string, password string) (*models.User, error) {
	user, err := svc.FindUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// GenerateToken issues an access/refresh token pair, either for a
// login/password grant or for a previously issued refresh token. The hash of
// the active refresh token is kept on the user row so Logout can revoke it.
func (svc *BankService) GenerateToken(ctx context.Context, login string, password string, inRefreshToken string) (accessToken string, refreshToken string, err error) {
	var user *models.User

	switch {
	case login != "" || password != "":
		user, err = svc.AuthenticateUser(ctx, login, password)
		if err != nil {
			return "", "", err
		}
	case inRefreshToken != "":
		userId, err := tokens.GetUserIdFromToken(svc.Config.JWTSecret, inRefreshToken)
		if err != nil {
			return "", "", ErrInvalidCredentials
		}
		user, err = svc.FindUser(ctx, userId)
		if err != nil {
			return "", "", ErrInvalidCredentials
		}
		// a logged-out or rotated refresh token no longer matches
		if user.RefreshTokenHash != hashToken(inRefreshToken) {
			return "", "", ErrInvalidCredentials
		}
	default:
		return "", "", ErrInvalidCredentials
	}

	accessToken, err = tokens.GenerateAccessToken(svc.Config.JWTSecret, svc.Config.JWTAccessTokenExpiry, user)
	if err != nil {
		return "", "", err
	}
	refreshToken, err = tokens.GenerateRefreshToken(svc.Config.JWTSecret, svc.Config.JWTRefreshTokenExpiry, user)
	if err != nil {
		return "", "", err
	}

	user.RefreshTokenHash = hashToken(refreshToken)
	_, err = svc.DB.NewUpdate().
		Model(user).
		Column("refresh_token_hash", "updated_at").
		WherePK().
		Exec(ctx)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// Logout tears down the session unconditionally: whatever refresh token was
// outstanding stops working.
func (svc *BankService) Logout(ctx context.Context, userId int64) error {
	_, err := svc.DB.NewUpdate().
		Model((*models.User)(nil)).
		Set("refresh_token_hash = NULL").
		Where("id = ?", userId).
		Exec(ctx)
	return err
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
