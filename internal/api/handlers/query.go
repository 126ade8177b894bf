package handlers

import (
	"net/http"
	"strconv"
	"strings"
)

// QueryString опциональный строковый параметр; пустое значение - nil
func QueryString(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}

// QueryInt64 опциональный числовой параметр; пустое значение - nil
func QueryInt64(r *http.Request, name string) (*int64, error) {
	v := QueryString(r, name)
	if v == nil {
		return nil, nil
	}
	n, err := strconv.ParseInt(*v, 10, 64)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// PathInt64 обязательный числовой параметр пути
func PathInt64(raw string) (int64, error) {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
