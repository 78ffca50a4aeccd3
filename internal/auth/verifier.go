package auth

import (
	"net/http"
	"strings"
	"time"

	"campuschat/config"
	"campuschat/internal/chat"
	"campuschat/internal/chat/model"
	appErrors "campuschat/pkg/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims carried in the platform's access tokens.
type Claims struct {
	Email string `json:"email"`
	Rank  string `json:"rank"`
	jwt.RegisteredClaims
}

// Verifier turns a bearer token into a verified identity. It is stateless;
// the signing secret comes from config.
type Verifier struct {
	secret    []byte
	expiredIn time.Duration
}

func NewVerifier(cfg *config.Config) *Verifier {
	return &Verifier{
		secret:    []byte(cfg.JWT.Secret),
		expiredIn: time.Duration(cfg.JWT.ExpiredIn) * time.Second,
	}
}

// TokenFromRequest extracts a bearer token: Authorization header first,
// query parameter second. A first-frame auth payload is handled by the
// gateway, after these two.
func TokenFromRequest(r *http.Request) string {
	if h := r.Header.Get("Authorization"); strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return r.URL.Query().Get("token")
}

// Verify parses and validates the token. Every failure mode (absent,
// malformed, bad signature, expired) collapses into ErrAuthRequired so the
// client cannot distinguish them.
func (v *Verifier) Verify(token string) (chat.Identity, error) {
	if token == "" {
		return chat.Identity{}, appErrors.ErrAuthRequired
	}

	claims := new(Claims)
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, appErrors.ErrAuthRequired
		}
		return v.secret, nil
	})
	if err != nil || !parsed.Valid {
		return chat.Identity{}, appErrors.ErrAuthRequired
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return chat.Identity{}, appErrors.ErrAuthRequired
	}

	return chat.Identity{
		UserID: userID,
		Email:  claims.Email,
		// A token without a rank claim still yields a usable identity.
		Rank: model.ParseRank(claims.Rank),
	}, nil
}

// GenerateToken signs an access token for the given identity.
func (v *Verifier) GenerateToken(identity chat.Identity) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: identity.Email,
		Rank:  string(identity.Rank),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(v.expiredIn)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
