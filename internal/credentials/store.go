package credentials

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ErrNoToken — токен не сохранён.
var ErrNoToken = errors.New("access token not set")

const (
	appDirName     = "gridbones"
	configFileName = "config"
)

// Store — файловое хранилище токена.
type Store struct {
	dir string
}

// NewStore создаёт Store в каталоге конфигурации пользователя
// (os.UserConfigDir + "gridbones").
func NewStore() (*Store, error) {
	cfg, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("resolving user config dir: %w", err)
	}
	return &Store{dir: filepath.Join(cfg, appDirName)}, nil
}

// NewStoreAt создаёт Store в явно заданном каталоге (для тестов
// и переопределения через окружение).
func NewStoreAt(dir string) *Store {
	return &Store{dir: dir}
}

// Path возвращает путь к файлу токена.
func (s *Store) Path() string {
	return filepath.Join(s.dir, configFileName)
}

// Load читает и деобфусцирует токен.
// Если файла нет — ErrNoToken.
func (s *Store) Load() (string, error) {
	b, err := os.ReadFile(s.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return "", ErrNoToken
	}
	if err != nil {
		return "", fmt.Errorf("reading token file: %w", err)
	}
	return rot13(strings.TrimSpace(string(b))), nil
}

// Save обфусцирует и записывает токен, создавая каталог при
// необходимости. Файл доступен только владельцу.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(s.Path(), []byte(rot13(token)), 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}
	return nil
}

// rot13 — самообратный подстановочный шифр над латинскими буквами;
// остальные символы проходят без изменений.
func rot13(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z':
			return 'a' + (r-'a'+13)%26
		case r >= 'A' && r <= 'Z':
			return 'A' + (r-'A'+13)%26
		}
		return r
	}, s)
}
