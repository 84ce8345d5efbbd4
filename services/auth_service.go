package services

import (
	"errors"
	"time"

	"CeibaCheckIn/global"
	"CeibaCheckIn/models"
	"CeibaCheckIn/utils"
	"CeibaCheckIn/utils/redislog"

	"github.com/golang-jwt/jwt/v5" // JWT token creation/signing.
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAuthNotConfigured  = errors.New("staff login not configured")
)

// AuthService issues staff tokens. There is one shared staff password.
type AuthService interface {
	Login(req models.LoginRequest) (string, error)
}

type authService struct {
	passwordHash string        // bcrypt hash from config
	jwtSecret    string        // HS256 signing secret
	exp          time.Duration // token lifetime
	log          *redislog.Logger
	now          func() time.Time
}

func NewAuthService(passwordHash, jwtSecret string, exp time.Duration, rlog *redislog.Logger) AuthService {
	return &authService{passwordHash: passwordHash, jwtSecret: jwtSecret, exp: exp, log: rlog, now: time.Now}
}

// Login validates the staff password and returns a signed JWT.
func (s *authService) Login(req models.LoginRequest) (string, error) {
	if s.passwordHash == "" || s.jwtSecret == "" {
		s.log.Error("login attempted without staff credentials configured", nil)
		return "", ErrAuthNotConfigured
	}
	if !utils.CheckPassword(s.passwordHash, req.Password) {
		s.log.Warn("login wrong password", nil) // never log the attempt itself
		return "", ErrInvalidCredentials
	}

	now := s.now()
	claims := jwt.MapClaims{
		"sub": global.StaffSubject,
		"iat": now.Unix(),
		"exp": now.Add(s.exp).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		s.log.Error("login token sign error", map[string]string{"err": err.Error()})
		return "", err
	}

	s.log.Info("login success", map[string]string{"sub": global.StaffSubject})
	return signed, nil
}
