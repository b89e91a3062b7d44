package model

import "time"

// ログイン済みユーザーのミラー。
// ログイン直後はAPIがユーザーを返さないのでusernameだけ埋まる。
type User struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// 会員登録リクエスト
type UserCreate struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ログインリクエスト
type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ログインレスポンス
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
