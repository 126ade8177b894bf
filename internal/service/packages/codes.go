package packages

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// lastDigits последние n цифр unix-времени в миллисекундах
func lastDigits(now time.Time, n int) string {
	ms := strconv.FormatInt(now.UnixMilli(), 10)
	if len(ms) <= n {
		return ms
	}
	return ms[len(ms)-n:]
}

// generateTrackingCode WJL + 6 цифр времени + 3 заглавные буквы
func generateTrackingCode(now time.Time) string {
	return "WJL" + lastDigits(now, 6) + randomLetters(3)
}

// generatePackageID ENC- + 6 цифр времени; повторные попытки добавляют -XXX
func generatePackageID(now time.Time, attempt int) string {
	id := fmt.Sprintf("ENC-%s", lastDigits(now, 6))
	if attempt == 0 {
		return id
	}
	return id + "-" + randomLetters(3)
}

func randomLetters(n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = letters[rand.Intn(len(letters))]
	}
	return string(out)
}
