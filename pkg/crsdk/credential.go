package crsdk

// DomainSeparator splits a domain-qualified username such as `CORP\alice`.
const DomainSeparator = `\`

type credentialKind int

const (
	credentialPassword credentialKind = iota
	credentialAPIKey
)

// Credential holds a username and a secret, where the secret is either a
// password or an API key. The secret is stored as bytes so it can be wiped;
// Authenticate wipes it on every exit path, so a Credential is single-use.
//
// Because Wipe mutates shared state, a Credential must not be shared across
// concurrent authentication attempts.
type Credential struct {
	username string
	secret   []byte
	kind     credentialKind
}

// NewPasswordCredential builds a password credential. The username may be
// domain-qualified (`DOMAIN\user`).
func NewPasswordCredential(username, password string) *Credential {
	return &Credential{
		username: username,
		secret:   []byte(password),
		kind:     credentialPassword,
	}
}

// NewAPIKeyCredential builds an API-key credential.
func NewAPIKeyCredential(username, apiKey string) *Credential {
	return &Credential{
		username: username,
		secret:   []byte(apiKey),
		kind:     credentialAPIKey,
	}
}

// Username returns the account name, including any domain qualifier.
func (c *Credential) Username() string { return c.username }

// HasAPIKey reports whether the secret is an API key rather than a password.
func (c *Credential) HasAPIKey() bool { return c.kind == credentialAPIKey }

// Wiped reports whether the secret has already been cleared.
func (c *Credential) Wiped() bool { return c.secret == nil }

// Wipe zeroes and releases the secret. Safe to call more than once.
func (c *Credential) Wipe() {
	for i := range c.secret {
		c.secret[i] = 0
	}
	c.secret = nil
}

// String implements fmt.Stringer without exposing the secret.
func (c *Credential) String() string {
	return c.username + ":<redacted>"
}

// secretValue returns the plaintext secret for request building.
func (c *Credential) secretValue() string { return string(c.secret) }
