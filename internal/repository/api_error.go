package repository

import (
	"errors"
	"fmt"
)

// リモートAPIの失敗。
// Detailはレスポンスのdetailが文字列だったときだけ入る
// （バリデーションエラー等の構造化detailはここでは使わない）。
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return e.Detail
	}
	return fmt.Sprintf("api error: status %d", e.Status)
}

func AsAPIError(err error) (*APIError, bool) {
	var ae *APIError
	ok := errors.As(err, &ae)
	return ae, ok
}
