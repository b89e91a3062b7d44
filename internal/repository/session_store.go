package repository

import "app/internal/domain/model"

// 認証トークンとユーザーミラーのローカル永続化。
// カートとは別キー。ログアウトで消えるのはこちらだけ。
type SessionStore interface {
	Token() string
	User() (model.User, bool)
	SaveSession(token string, user model.User)
	Clear()
}
