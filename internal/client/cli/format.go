package cli

import (
	"errors"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/client/apiclient"
	"github.com/dmitrijs2005/storefront/internal/common"
)

// formatVND renders an amount the way vi-VN currency formatting does:
// dot-grouped thousands followed by the dong sign.
func formatVND(amount int64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	digits := strconv.FormatInt(amount, 10)

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteString(" ₫")
	return b.String()
}

func parseOrderArgs(args []string) (string, int, bool) {
	switch len(args) {
	case 1:
		return args[0], 1, true
	case 2:
		qty, err := strconv.Atoi(args[1])
		if err != nil || qty < 1 {
			return "", 0, false
		}
		return args[0], qty, true
	default:
		return "", 0, false
	}
}

// describeErr turns service errors into a line for the user.
func describeErr(err error) string {
	switch {
	case errors.Is(err, apiclient.ErrAuthExhausted), errors.Is(err, apiclient.ErrSessionInvalid):
		return "your session has ended, please log in again"
	case errors.Is(err, common.ErrUnavailable):
		return "the storefront is unreachable, try again later"
	case errors.Is(err, common.ErrorNotFound):
		return "not found"
	case errors.Is(err, common.ErrorAlreadyExists):
		return "already exists"
	default:
		return err.Error()
	}
}
