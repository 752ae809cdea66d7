package commands

import (
	"errors"
	"strings"

	"warehouse/internal/core/domain/model/kernel"
	"warehouse/internal/pkg/errs"
	"warehouse/internal/pkg/guard"
)

var ErrSetBinBlockedCommandIsNotConstructed = errors.New(
	"SetBinBlockedCommand must be created via NewSetBinBlockedCommand constructor",
)

// SetBinBlockedCommand blocks or unblocks a bin. It is the one change a bin
// holding inventory accepts.
type SetBinBlockedCommand struct {
	binID   kernel.UUID
	blocked bool
	reason  string

	guard guard.ConstructorGuard
}

func NewSetBinBlockedCommand(binID kernel.UUID, blocked bool, reason string) (SetBinBlockedCommand, error) {
	if err := binID.Validate(); err != nil {
		return SetBinBlockedCommand{}, err
	}
	if blocked && strings.TrimSpace(reason) == "" {
		return SetBinBlockedCommand{}, errs.NewValueIsRequiredError("block reason")
	}

	return SetBinBlockedCommand{
		binID:   binID,
		blocked: blocked,
		reason:  reason,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c SetBinBlockedCommand) Validate() error {
	return c.guard.Validate(ErrSetBinBlockedCommandIsNotConstructed)
}

func (c SetBinBlockedCommand) BinID() kernel.UUID { return c.binID }

func (c SetBinBlockedCommand) Blocked() bool { return c.blocked }

func (c SetBinBlockedCommand) Reason() string { return c.reason }
