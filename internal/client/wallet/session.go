// Package wallet is the account session gate of the shell. The wallet
// protocol itself lives outside furball; this package only remembers which
// account the user signed in with.
package wallet

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"

	"github.com/furball-art/furball/internal/client/repositories/metadata"
)

const AccountIDKey = "account_id"

var ErrInvalidAccountID = errors.New("invalid account id")

// Session is the view of the wallet the shell needs.
type Session interface {
	IsSignedIn() bool
	AccountID() string
}

// Account ids follow NEAR naming: 2-64 chars, lowercase alphanumerics
// separated by single '-', '_' or '.'.
var accountIDPattern = regexp.MustCompile(`^(([a-z\d]+[-_])*[a-z\d]+\.)*([a-z\d]+[-_])*[a-z\d]+$`)

func ValidateAccountID(id string) error {
	if len(id) < 2 || len(id) > 64 || !accountIDPattern.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidAccountID, id)
	}
	return nil
}

// LocalSession persists the signed-in account in the metadata store.
type LocalSession struct {
	repo metadata.Repository

	mu      sync.RWMutex
	account string
}

var _ Session = (*LocalSession)(nil)

// Restore loads a previously signed-in account, if any.
func Restore(ctx context.Context, repo metadata.Repository) (*LocalSession, error) {
	v, err := repo.Get(ctx, AccountIDKey)
	if err != nil {
		return nil, fmt.Errorf("read account id: %w", err)
	}
	return &LocalSession{repo: repo, account: string(v)}, nil
}

func (s *LocalSession) IsSignedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account != ""
}

func (s *LocalSession) AccountID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.account
}

func (s *LocalSession) SignIn(ctx context.Context, accountID string) error {
	if err := ValidateAccountID(accountID); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, AccountIDKey, []byte(accountID)); err != nil {
		return fmt.Errorf("write account id: %w", err)
	}
	s.mu.Lock()
	s.account = accountID
	s.mu.Unlock()
	return nil
}

func (s *LocalSession) SignOut(ctx context.Context) error {
	if err := s.repo.Delete(ctx, AccountIDKey); err != nil {
		return fmt.Errorf("clear account id: %w", err)
	}
	s.mu.Lock()
	s.account = ""
	s.mu.Unlock()
	return nil
}
