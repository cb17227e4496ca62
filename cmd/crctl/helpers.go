package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/opsbotics/controlroom/pkg/crsdk"
	"golang.org/x/term"
)

// connect authenticates against the configured Control Room and returns the
// session. The caller owns teardown; use closeSession in a defer.
func connect(ctx context.Context) (*crsdk.Session, error) {
	if flagURL == "" {
		return nil, fmt.Errorf("no Control Room URL; set --url or CONTROLROOM_URL")
	}
	if flagUsername == "" {
		return nil, fmt.Errorf("no username; set --username or CONTROLROOM_USERNAME")
	}

	cred, err := resolveCredential()
	if err != nil {
		return nil, err
	}

	client := crsdk.NewSDKClient(flagURL)
	session, err := client.Authenticate(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("login to %s: %w", flagURL, err)
	}

	return session, nil
}

// resolveCredential prefers an API key from the environment, then a password
// from the environment, then a no-echo terminal prompt.
func resolveCredential() (*crsdk.Credential, error) {
	if apiKey := os.Getenv("CONTROLROOM_APIKEY"); apiKey != "" {
		return crsdk.NewAPIKeyCredential(flagUsername, apiKey), nil
	}
	if password := os.Getenv("CONTROLROOM_PASSWORD"); password != "" {
		return crsdk.NewPasswordCredential(flagUsername, password), nil
	}

	fmt.Fprintf(os.Stderr, "Password for %s: ", flagUsername)
	passBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	if err != nil {
		return nil, fmt.Errorf("reading password: %w", err)
	}
	fmt.Fprintln(os.Stderr)

	return crsdk.NewPasswordCredential(flagUsername, string(passBytes)), nil
}

// closeSession logs out, ignoring a token the server already dropped.
func closeSession(ctx context.Context, session *crsdk.Session) {
	if err := session.Logout(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "warning: logout: %v\n", err)
	}
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// ============================================================================
// Date-range flags and interactive picking
// ============================================================================

const dateLayout = "2006-01-02"

// resolveRange turns the flags into a DateRange. With no flags at all the
// resolver falls back to the terminal picker.
func resolveRange(ctx context.Context, shortcut, from, to string) (crsdk.DateRange, error) {
	req := crsdk.RangeRequest{}

	if shortcut != "" {
		sc, err := crsdk.ParseShortcut(shortcut)
		if err != nil {
			return crsdk.DateRange{}, err
		}
		req.Shortcut = sc
	}

	if from != "" {
		t, err := time.Parse(dateLayout, from)
		if err != nil {
			return crsdk.DateRange{}, fmt.Errorf("parsing --from: %w", err)
		}
		req.Begin = t
	}
	if to != "" {
		t, err := time.Parse(dateLayout, to)
		if err != nil {
			return crsdk.DateRange{}, fmt.Errorf("parsing --to: %w", err)
		}
		req.End = t
	}

	resolver := &crsdk.RangeResolver{Picker: terminalPicker{}}
	return resolver.Resolve(ctx, req)
}

// terminalPicker prompts for a begin/end date pair on the terminal. An empty
// answer cancels the operation.
type terminalPicker struct{}

func (terminalPicker) PickRange(ctx context.Context) (time.Time, time.Time, error) {
	reader := bufio.NewReader(os.Stdin)

	begin, err := promptDate(reader, "Start date")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	end, err := promptDate(reader, "End date")
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	return begin, end, nil
}

func promptDate(reader *bufio.Reader, label string) (time.Time, error) {
	fmt.Fprintf(os.Stderr, "%s (YYYY-MM-DD, empty to cancel): ", label)

	line, err := reader.ReadString('\n')
	if err != nil {
		return time.Time{}, crsdk.ErrCancelled
	}

	line = strings.TrimSpace(line)
	if line == "" {
		return time.Time{}, crsdk.ErrCancelled
	}

	t, err := time.Parse(dateLayout, line)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", label, err)
	}

	return t, nil
}
