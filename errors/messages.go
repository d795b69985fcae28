package errors

import goerrors "errors"

// Placeholder is shown in place of a result whenever a conversion fails.
const Placeholder = "—"

// UserMessage maps a conversion error to the text shown to the user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case goerrors.Is(err, ErrMissingValue):
		return "請輸入欲換算的壓力數值。"
	case goerrors.Is(err, ErrInvalidNumber):
		return "請輸入有效的數字。"
	case goerrors.Is(err, ErrUnknownUnit):
		return "請選擇欲轉換的單位。"
	case goerrors.Is(err, ErrSameUnit):
		return "來源與目標單位相同，請選擇不同的單位。"
	default:
		return "無法完成換算。"
	}
}
