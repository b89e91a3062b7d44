package usecase

import (
	"context"
	"time"

	"app/internal/domain/model"
	"app/internal/repository"

	"github.com/golang-jwt/jwt/v4"
)

type AuthResult struct {
	Success bool     `json:"success"`
	Failure *Failure `json:"failure,omitempty"`
}

// AuthUsecase はログインセッションを管理する。
// トークンとユーザーミラーはSessionStoreへ保存する。
type AuthUsecase struct {
	api     repository.StoreAPI
	session repository.SessionStore
}

func NewAuthUsecase(api repository.StoreAPI, session repository.SessionStore) *AuthUsecase {
	return &AuthUsecase{api: api, session: session}
}

// ログイン。成功したらトークンとユーザーミラーを保存する。
func (u *AuthUsecase) Login(ctx context.Context, in model.UserLogin) AuthResult {
	tok, err := u.api.Login(ctx, in)
	if err != nil {
		return AuthResult{Failure: normalizeError(err, "Login failed")}
	}

	// ログインAPIはユーザーを返さないのでusernameだけのミラーを置く
	u.session.SaveSession(tok.AccessToken, model.User{
		Username:  in.Username,
		CreatedAt: time.Now(),
	})

	return AuthResult{Success: true}
}

// 会員登録。登録だけでログイン状態にはしない。
func (u *AuthUsecase) Register(ctx context.Context, in model.UserCreate) AuthResult {
	if _, err := u.api.Register(ctx, in); err != nil {
		return AuthResult{Failure: normalizeError(err, "Registration failed")}
	}
	return AuthResult{Success: true}
}

// ログアウト。カートのローカル保存は消さない。
func (u *AuthUsecase) Logout() {
	u.session.Clear()
}

// 401を受けたときにAPI層から呼ばれる（セッション失効は復旧不能）
func (u *AuthUsecase) ForceLogout() {
	u.session.Clear()
}

func (u *AuthUsecase) CurrentUser() (model.User, bool) {
	return u.session.User()
}

// トークンが有り、expが読めるなら期限内であること。
// 署名検証はしない（鍵はリモートのもの）。
func (u *AuthUsecase) IsAuthenticated() bool {
	raw := u.session.Token()
	if raw == "" {
		return false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		// JWTとして読めないトークンは期限判定できないのでそのまま使う
		return true
	}

	if exp, ok := claims["exp"].(float64); ok {
		return time.Now().Unix() < int64(exp)
	}
	return true
}
