package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/smart-plant-guard/internal/crypto"
	"github.com/MKhiriev/smart-plant-guard/internal/payload"
)

// indexKeySize is the length of keys printed by keygen for the index key.
const indexKeySize = 32

var (
	errNoInput = errors.New("value must not be empty")
	// errNoPayload is returned by open --json when the bundle does not
	// decrypt to a JSON object, the case a server read treats as absent.
	errNoPayload = errors.New("bundle holds no readable payload object")
)

func (c *CLI) keyring() (crypto.FieldCipher, error) {
	return crypto.NewKeyring(c.cfg.App.DataKeyB64, c.cfg.App.IndexKeyB64)
}

func (c *CLI) keygenCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "keygen",
		Short: "Print a fresh data key and index key",
		Long: `Print a random 32-byte AES data key and an independent index key as
environment assignments.

Examples:
  plantctl keygen >> .env`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataKey, err := crypto.GenerateKey(crypto.KeySize)
			if err != nil {
				return fmt.Errorf("generate data key: %w", err)
			}
			indexKey, err := crypto.GenerateKey(indexKeySize)
			if err != nil {
				return fmt.Errorf("generate index key: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "APP_DATA_KEY_B64=%s\nAPP_INDEX_KEY_B64=%s\n", dataKey, indexKey)
			return nil
		},
	}
}

func (c *CLI) indexCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "index <value>",
		Short: "Print the lookup index of a value",
		Long: `Print the HMAC-SHA256 lookup index the server stores for a value. Input is
trimmed and lower-cased first, as on the server.

Examples:
  plantctl index "Root@Lab.org"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys, err := c.keyring()
			if err != nil {
				return err
			}
			index, err := keys.Index(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), index)
			return nil
		},
	}
}

func (c *CLI) sealCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seal <text>",
		Short: "Encrypt text into an envelope bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if args[0] == "" {
				return errNoInput
			}
			keys, err := c.keyring()
			if err != nil {
				return err
			}
			bundle, err := keys.Seal(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), bundle)
			return nil
		},
	}
}

func (c *CLI) openCommand() *cobra.Command {
	var asJSON bool
	open := &cobra.Command{
		Use:   "open <bundle>",
		Short: "Decrypt an envelope bundle",
		Long: `Decrypt an envelope bundle and print the plaintext.

With --json the plaintext must be a JSON object, as in the payload columns;
it is decoded exactly the way the server reads those columns.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if asJSON {
				return c.openPayload(cmd, args[0])
			}
			keys, err := c.keyring()
			if err != nil {
				return err
			}
			plaintext, err := keys.Open(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), plaintext)
			return nil
		},
	}
	open.Flags().BoolVar(&asJSON, "json", false, "decode the plaintext as a payload object")
	return open
}

func (c *CLI) openPayload(cmd *cobra.Command, bundle string) error {
	key, err := crypto.DecodeKey(c.cfg.App.DataKeyB64)
	if err != nil {
		return fmt.Errorf("data key: %w", err)
	}
	if len(key) != crypto.KeySize {
		return crypto.ErrMissingKey
	}
	obj := payload.DecryptPayload(bundle, key)
	if obj == nil {
		return errNoPayload
	}
	return printJSON(cmd, obj)
}
