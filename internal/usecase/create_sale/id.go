package create_sale

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const idAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateSaleID формирует идентификатор вида WJL-<unix ms>-<5 символов>
func generateSaleID(now time.Time) string {
	var b strings.Builder
	for i := 0; i < 5; i++ {
		b.WriteByte(idAlphabet[rand.Intn(len(idAlphabet))])
	}
	return fmt.Sprintf("WJL-%d-%s", now.UnixMilli(), b.String())
}
