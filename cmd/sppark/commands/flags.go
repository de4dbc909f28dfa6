// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package commands

import (
	"github.com/spf13/pflag"

	"github.com/ingonyama-zk/sppark/config"
)

const ProfileDirKey = "profile-dir"

func AddFlags(flags *pflag.FlagSet) {
	config.AddFlags(flags)
	flags.String(ProfileDirKey, "", "Directory to write CPU and heap profiles of the run to")
}

type Config struct {
	config.Bench
	ProfileDir string
}

func ParseFlags(flags *pflag.FlagSet, args []string) (*Config, error) {
	if err := flags.Parse(args); err != nil {
		return nil, err
	}

	bench, err := config.Load(flags)
	if err != nil {
		return nil, err
	}

	profileDir, err := flags.GetString(ProfileDirKey)
	if err != nil {
		return nil, err
	}

	return &Config{
		Bench:      bench,
		ProfileDir: profileDir,
	}, nil
}
