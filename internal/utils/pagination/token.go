package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano

// EncodeToken creates an opaque token from the transaction date and id of the
// last sale on a page.
func EncodeToken(transactionDate time.Time, saleID int64) string {
	tokenStr := fmt.Sprintf("%s|%d", transactionDate.UTC().Format(timeFormat), saleID)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken.
func DecodeToken(token string) (time.Time, int64, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (split)")
	}

	transactionDate, err := time.Parse(timeFormat, parts[0])
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (transaction date parse): %w", err)
	}
	saleID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return time.Time{}, 0, fmt.Errorf("invalid pagination token format (sale id parse): %w", err)
	}
	return transactionDate, saleID, nil
}
