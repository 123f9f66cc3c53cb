package midtrans

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"tabletalk-backend/domain"
)

// Gateway references embed the internal order id so the webhook can map a
// notification back to its order: ORDER-<order id>-<unix millis>.
const orderReferencePrefix = "ORDER"

var orderReferencePattern = regexp.MustCompile(`^ORDER-(\d+)-`)

func BuildOrderReference(orderID uint) string {
	return fmt.Sprintf("%s-%d-%d", orderReferencePrefix, orderID, time.Now().UnixMilli())
}

func ParseOrderReference(reference string) (uint, error) {
	match := orderReferencePattern.FindStringSubmatch(reference)
	if match == nil {
		return 0, domain.ErrInvalidOrderReference
	}

	id, err := strconv.ParseUint(match[1], 10, 64)
	if err != nil {
		return 0, domain.ErrInvalidOrderReference
	}
	return uint(id), nil
}
