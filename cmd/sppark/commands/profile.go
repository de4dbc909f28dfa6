// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"errors"
	"strings"

	"github.com/luxfi/log"

	"github.com/ingonyama-zk/sppark/profile"
)

// profiled runs f, wrapped in a CPU and heap profile when dir is set.
func profiled(logger log.Logger, dir, name string, f func() error) error {
	if dir == "" {
		return f()
	}

	p := profile.New(dir, name)
	if err := p.Start(); err != nil {
		return err
	}
	err := f()
	if stopErr := p.Stop(); stopErr != nil {
		return errors.Join(err, stopErr)
	}
	logger.Info("wrote profiles", log.String("files", strings.Join(p.Files(), ",")))
	return err
}
