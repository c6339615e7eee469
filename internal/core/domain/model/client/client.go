// Package client provides the account entity of a shipper using the
// booking service. Clients authenticate with bearer tokens and own
// transportations, addresses and cargo.
package client

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
)

// ErrClientIsNotConstructed is returned when a Client instance was not
// created through NewClient.
var ErrClientIsNotConstructed = errors.New("Client must be created via NewClient constructor")

// Client is a shipper account. It carries only what the booking flow
// needs: identity, a display name and a contact email.
type Client struct {
	id    kernel.UUID
	name  string
	email string

	isConstructed bool
}

// NewClient creates a validated client account.
func NewClient(id kernel.UUID, name, email string) (*Client, error) {
	c := &Client{
		isConstructed: true,
	}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate ensures the instance was created through the constructor.
func (c *Client) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientIsNotConstructed
	}
	return nil
}

// ID returns the client's unique identifier.
func (c *Client) ID() kernel.UUID {
	return c.id
}

// Name returns the display name.
func (c *Client) Name() string {
	return c.name
}

// Email returns the contact email.
func (c *Client) Email() string {
	return c.email
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *Client) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}
