package wifi

import (
	"context"
	"runtime"
	"time"

	"github.com/evilsocket/islazy/log"
	"github.com/evilsocket/wifiscan/models"
)

type Scanner struct {
	os      string
	run     Runner
	timeout time.Duration
	vendors bool
}

type Option func(s *Scanner)

func WithOS(os string) Option {
	return func(s *Scanner) {
		s.os = os
	}
}

func WithRunner(run Runner) Option {
	return func(s *Scanner) {
		s.run = run
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(s *Scanner) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithVendorLookup replaces the "Unknown" vendor placeholder with the OUI
// manufacturer when it's known.
func WithVendorLookup(enabled bool) Option {
	return func(s *Scanner) {
		s.vendors = enabled
	}
}

func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{
		os:      runtime.GOOS,
		run:     ExecRunner,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Scanner) OS() string {
	return s.os
}

func (s *Scanner) Supported() bool {
	_, found := Commands[s.os]
	return found
}

// Scan lists the visible access points using the platform tool. Any failure
// is logged and results in an empty list.
func (s *Scanner) Scan() []models.AccessPoint {
	cmd, found := Commands[s.os]
	if !found {
		log.Debug("wifi scanning is not supported on %s", s.os)
		return make([]models.AccessPoint, 0)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	started := time.Now()
	out, err := s.run(ctx, cmd.Name, cmd.Args...)
	if err != nil {
		log.Error("error scanning wifi networks: %v", err)
		return make([]models.AccessPoint, 0)
	}

	networks := cmd.Parse(string(out))
	if s.vendors {
		for i := range networks {
			networks[i].Vendor = LookupVendor(networks[i].MAC)
		}
	}

	log.Debug("%s found %d networks in %s", cmd.Name, len(networks), time.Since(started))

	return networks
}
