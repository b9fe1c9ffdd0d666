package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/adreel-cli/adreel/auth"
	"github.com/adreel-cli/adreel/icon"
	"github.com/adreel-cli/adreel/log"
	"github.com/adreel-cli/adreel/open"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/zalando/go-keyring"
)

const driveCredentialsURL = "https://console.cloud.google.com/apis/credentials"

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(authDriveCmd)
	authDriveCmd.Flags().BoolP("delete", "d", false, "Remove the stored API key")
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage credentials kept in the system keyring",
}

// authDriveCmd stores the Drive API key used to show video titles.
var authDriveCmd = &cobra.Command{
	Use:   "drive",
	Short: "Store the Google Drive API key used to show video titles",
	Long: `Store a Google Drive API key in the system keyring.
With a key, the player window shows the file name instead of the file id.
Any key with the Drive API enabled works, no OAuth consent is needed.`,
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("delete")) {
			err := auth.DeleteDriveKey()
			if errors.Is(err, keyring.ErrNotFound) {
				fmt.Printf("%s no Drive API key is stored\n", icon.Get(icon.Success))
				return
			}
			handleErr(err)
			log.Info("Drive API key removed from keyring")
			fmt.Printf("%s Drive API key removed\n", icon.Get(icon.Success))
			return
		}

		confirmOpenInBrowser := survey.Confirm{
			Message: "Open the Google Cloud console to create an API key?",
			Default: false,
		}

		var openInBrowser bool
		err := survey.AskOne(&confirmOpenInBrowser, &openInBrowser)
		if err == nil && openInBrowser {
			err = open.Start(driveCredentialsURL)
		}

		if err != nil || !openInBrowser {
			fmt.Println("API keys can be created at:")
			fmt.Println(driveCredentialsURL)
		}

		input := survey.Password{
			Message: "Paste the API key:",
		}

		var response string
		handleErr(survey.AskOne(&input, &response))

		response = strings.TrimSpace(response)
		if response == "" {
			return
		}

		handleErr(auth.SetDriveKey(response))
		log.Info("Drive API key stored in keyring")
		fmt.Printf("%s Drive API key stored in the system keyring\n", icon.Get(icon.Success))
	},
}
