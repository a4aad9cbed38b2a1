package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/MediCare-Portal/internal/domain"
	"github.com/m04kA/MediCare-Portal/internal/infra/storage/localstorage"
)

// persistedState только эти три поля попадают в хранилище
type persistedState struct {
	User            *domain.User `json:"user"`
	Token           *string      `json:"token"`
	IsAuthenticated bool         `json:"isAuthenticated"`
}

// legacyEnvelope формат {"state": {...}, "version": N}, который писали старые клиенты
type legacyEnvelope struct {
	State *persistedState `json:"state"`
}

// Persister сериализует сессию в localstorage под фиксированным ключом
type Persister struct {
	repo localstorage.Repository
	key  string
}

// NewPersister создает persister; пустой key - domain.SessionStorageKey
func NewPersister(repo localstorage.Repository, key string) *Persister {
	if key == "" {
		key = domain.SessionStorageKey
	}
	return &Persister{repo: repo, key: key}
}

// Key ключ, под которым лежит blob
func (p *Persister) Key() string {
	return p.key
}

func (p *Persister) Save(ctx context.Context, s domain.Session) error {
	state := persistedState{
		User:            s.User,
		IsAuthenticated: s.IsAuthenticated,
	}
	if s.Token != "" {
		state.Token = &s.Token
	}

	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("%w: encode: %v", ErrPersist, err)
	}

	if err := p.repo.Set(ctx, p.key, string(data)); err != nil {
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}
	return nil
}

// Load возвращает ErrNoPersistedState, если ключа нет, и ErrCorruptState,
// если blob не разбирается. Ошибки самого хранилища пробрасываются как есть.
func (p *Persister) Load(ctx context.Context) (domain.Session, error) {
	raw, err := p.repo.Get(ctx, p.key)
	if errors.Is(err, localstorage.ErrKeyNotFound) {
		return domain.Session{}, ErrNoPersistedState
	}
	if errors.Is(err, localstorage.ErrCorrupt) {
		return domain.Session{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}
	if err != nil {
		return domain.Session{}, err
	}

	return Decode(raw)
}

func (p *Persister) Clear(ctx context.Context) error {
	if err := p.repo.Remove(ctx, p.key); err != nil {
		return fmt.Errorf("%w: remove: %v", ErrPersist, err)
	}
	return nil
}

// Decode разбирает blob сессии. Поддерживает плоский формат и обёртку {"state": ...}.
func Decode(raw string) (domain.Session, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	var state persistedState
	if _, wrapped := fields["state"]; wrapped {
		var env legacyEnvelope
		if err := json.Unmarshal([]byte(raw), &env); err != nil {
			return domain.Session{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
		}
		if env.State != nil {
			state = *env.State
		}
	} else if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return domain.Session{}, fmt.Errorf("%w: %v", ErrCorruptState, err)
	}

	s := domain.Session{
		User:            state.User,
		IsAuthenticated: state.IsAuthenticated,
	}
	if state.Token != nil {
		s.Token = *state.Token
	}
	return s, nil
}
