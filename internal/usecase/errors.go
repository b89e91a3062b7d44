package usecase

import "app/internal/repository"

// 失敗の振り分け先（ログイン画面へ / インライン表示 など）
type FailureKind string

const (
	FailureAuthRequired FailureKind = "auth_required"
	FailureEmptyCart    FailureKind = "empty_cart"
	FailureRejected     FailureKind = "rejected"
)

// 非同期境界の唯一のエラー形。
// 表示層にはこの形しか渡さない（文字列と構造体の混在を作らない）。
type Failure struct {
	Kind FailureKind `json:"kind"`
	Text string      `json:"text"`
}

func (f *Failure) Error() string {
	return f.Text
}

func NewFailure(kind FailureKind, text string) *Failure {
	return &Failure{Kind: kind, Text: text}
}

// APIエラーをFailureに正規化する。
// detailが文字列で取れたときだけそれを使い、無ければfallback。
func normalizeError(err error, fallback string) *Failure {
	if ae, ok := repository.AsAPIError(err); ok && ae.Detail != "" {
		return &Failure{Kind: FailureRejected, Text: ae.Detail}
	}
	return &Failure{Kind: FailureRejected, Text: fallback}
}
