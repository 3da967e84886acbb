// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package notify sends completion emails with the generated document
// attached. Like the store, it is optional: missing sender credentials
// turn Send into a no-op returning false.
package notify

import (
	"os"

	gomail "gopkg.in/gomail.v2"
)

const (
	defaultHost = "smtp.gmail.com"
	defaultPort = 465
	defaultName = "Codebase Genius Bot"
)

// Config holds SMTP sender settings. Sender and Password are required for
// delivery; everything else has defaults.
type Config struct {
	Sender   string // Sender email address
	Password string // SMTP password or app password
	Name     string // Display name (default "Codebase Genius Bot")
	To       string // Recipient (defaults to Sender)
	Host     string // SMTP host (default smtp.gmail.com)
	Port     int    // SMTP port (default 465, implicit TLS)
}

// Notifier delivers notification emails over SMTP.
type Notifier struct {
	cfg Config
}

// New creates a notifier. Missing credentials are tolerated; Send simply
// reports false.
func New(cfg Config) *Notifier {
	if cfg.Name == "" {
		cfg.Name = defaultName
	}
	if cfg.Host == "" {
		cfg.Host = defaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.To == "" {
		cfg.To = cfg.Sender
	}
	return &Notifier{cfg: cfg}
}

// Enabled reports whether sender credentials are configured.
func (n *Notifier) Enabled() bool {
	return n.cfg.Sender != "" && n.cfg.Password != ""
}

// Send delivers a subject+body message, attaching attachmentPath when it
// names an existing file. Returns true only on successful delivery;
// missing credentials and SMTP failures both yield false.
func (n *Notifier) Send(subject, body, attachmentPath string) bool {
	if !n.Enabled() {
		return false
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", n.cfg.Sender, n.cfg.Name)
	m.SetHeader("To", n.cfg.To)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if attachmentPath != "" {
		if _, err := os.Stat(attachmentPath); err == nil {
			m.Attach(attachmentPath)
		}
	}

	d := gomail.NewDialer(n.cfg.Host, n.cfg.Port, n.cfg.Sender, n.cfg.Password)
	d.SSL = n.cfg.Port == defaultPort

	return d.DialAndSend(m) == nil
}
