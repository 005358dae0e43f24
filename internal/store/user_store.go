package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"go-catalog-api/internal/model"
)

type usersDoc struct {
	Users []model.User `json:"users"`
}

// LoadUsers reads the users file once at boot, probing the primary path then
// the legacy one. Both the {"users": [...]} wrapper and a bare array are
// accepted. A missing file is not an error: it yields an empty user set, so
// every login fails with 401 instead of crashing the process.
func LoadUsers(primary, legacy string) ([]model.User, error) {
	var raw []byte
	for _, path := range []string{primary, legacy} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err == nil {
			raw = data
			break
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return []model.User{}, nil
	}

	if trimmed[0] == '[' {
		var users []model.User
		if err := json.Unmarshal(trimmed, &users); err != nil {
			return []model.User{}, nil
		}
		return users, nil
	}

	var doc usersDoc
	if err := json.Unmarshal(trimmed, &doc); err != nil || doc.Users == nil {
		return []model.User{}, nil
	}
	return doc.Users, nil
}
