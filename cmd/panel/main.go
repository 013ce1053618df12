// The panel command is the terminal control panel for the link-tracker
// backend: login, dashboards, campaign and link management, payments, and
// the admin tables, all against the REST API.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/brainlink/trackpanel/internal/api"
	"github.com/brainlink/trackpanel/internal/config"
	"github.com/brainlink/trackpanel/internal/logger"
	"github.com/brainlink/trackpanel/internal/panel"
	"github.com/brainlink/trackpanel/internal/session"
)

var (
	version   string
	buildDate string
)

const shellHelp = `Available commands:
  dashboard [period]        metrics overview (default 7d)
  campaigns                 list campaigns
  campaign-new              create a campaign
  campaign-del <id>         delete a campaign
  links                     list tracking links
  link-new <url>            create a tracking link
  link-del <id>             delete a tracking link
  shorten <url>             plain short link
  keys                      list API keys
  key-new <name>            create an API key
  key-del <id>              revoke an API key
  wallets                   payment addresses
  pay                       submit a crypto payment and watch it
  watch <payment-id>        watch an existing payment
  plans                     subscription plans
  tickets                   support tickets
  ticket <id>               ticket thread
  ticket-new                open a ticket
  ticket-reply <id> <msg>   reply to a ticket
  ticket-close <id>         close a ticket
  notifications             notification feed
  read-all                  mark all notifications read
  profile                   account profile
  passwd                    change password
  users                     [admin] user table
  pending                   [admin] pending registrations
  approve <id>              [admin] approve registration
  suspend <id>              [admin] suspend user
  user-del <id>             [admin] delete user
  admin-campaigns           [admin] campaign table
  admin-campaign-del <id>   [admin] delete any campaign
  payments                  [admin] crypto payments queue
  verify <id>               [admin] confirm a payment
  wallet-admin              [admin] wallet manager
  wallet-add                [admin] add wallet
  wallet-del <id>           [admin] delete wallet
  blocked                   [admin] blocked IPs
  block <ip> [reason]       [admin] block an IP
  unblock <ip>              [admin] unblock an IP
  help, exit`

// repl runs the interactive shell loop dispatching view commands.
func repl(ctx context.Context, p *panel.Panel) {
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Print("trackpanel> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		args := strings.Fields(line)
		if len(args) == 0 {
			continue
		}

		switch args[0] {
		case "help":
			fmt.Println(shellHelp)
		case "dashboard":
			period := "7d"
			if len(args) > 1 {
				period = args[1]
			}
			p.ShowDashboard(ctx, period)
		case "campaigns":
			p.ShowCampaigns(ctx)
		case "campaign-new":
			p.PromptCreateCampaign(ctx)
		case "campaign-del":
			if id, ok := intArg(args, 1); ok {
				p.DeleteCampaign(ctx, id)
			}
		case "links":
			p.ShowLinks(ctx, url.Values{})
		case "link-new":
			if len(args) < 2 {
				fmt.Println("Usage: link-new <url>")
				continue
			}
			p.CreateLink(ctx, api.LinkInput{TargetURL: args[1]})
		case "link-del":
			if id, ok := intArg(args, 1); ok {
				p.DeleteLink(ctx, id)
			}
		case "shorten":
			if len(args) < 2 {
				fmt.Println("Usage: shorten <url>")
				continue
			}
			p.ShortenURL(ctx, args[1], api.ShortenOptions{})
		case "keys":
			p.ShowAPIKeys(ctx)
		case "key-new":
			if len(args) < 2 {
				fmt.Println("Usage: key-new <name>")
				continue
			}
			p.CreateAPIKey(ctx, strings.Join(args[1:], " "))
		case "key-del":
			if id, ok := intArg(args, 1); ok {
				p.DeleteAPIKey(ctx, id)
			}
		case "wallets":
			p.ShowCryptoWallets(ctx)
		case "pay":
			promptPayment(ctx, p)
		case "watch":
			if id, ok := intArg(args, 1); ok {
				p.WatchPayment(ctx, id)
			}
		case "plans":
			p.ShowPlans(ctx)
		case "tickets":
			p.ShowTickets(ctx)
		case "ticket":
			if id, ok := intArg(args, 1); ok {
				p.ShowTicket(ctx, id)
			}
		case "ticket-new":
			promptTicket(ctx, p)
		case "ticket-reply":
			if len(args) < 3 {
				fmt.Println("Usage: ticket-reply <id> <message>")
				continue
			}
			if id, ok := intArg(args, 1); ok {
				p.ReplyTicket(ctx, id, strings.Join(args[2:], " "))
			}
		case "ticket-close":
			if id, ok := intArg(args, 1); ok {
				p.CloseTicket(ctx, id)
			}
		case "notifications":
			p.ShowNotifications(ctx)
		case "read-all":
			p.MarkAllNotificationsRead(ctx)
		case "profile":
			p.ShowProfile(ctx)
		case "passwd":
			p.ChangePassword(ctx)
		case "users":
			p.ShowAdminUsers(ctx, url.Values{})
		case "pending":
			p.ShowPendingUsers(ctx)
		case "approve":
			if id, ok := intArg(args, 1); ok {
				p.ApproveUser(ctx, id)
			}
		case "suspend":
			if id, ok := intArg(args, 1); ok {
				p.SuspendUser(ctx, id)
			}
		case "user-del":
			if id, ok := intArg(args, 1); ok {
				p.DeleteUser(ctx, id)
			}
		case "admin-campaigns":
			p.ShowAdminCampaigns(ctx)
		case "admin-campaign-del":
			if id, ok := intArg(args, 1); ok {
				p.DeleteAdminCampaign(ctx, id)
			}
		case "payments":
			p.ShowAdminPayments(ctx)
		case "verify":
			if id, ok := intArg(args, 1); ok {
				p.VerifyPayment(ctx, id, true)
			}
		case "wallet-admin":
			p.ShowWalletManager(ctx)
		case "wallet-add":
			promptWallet(ctx, p)
		case "wallet-del":
			if id, ok := intArg(args, 1); ok {
				p.DeleteWallet(ctx, id)
			}
		case "blocked":
			p.ShowBlockedIPs(ctx)
		case "block":
			if len(args) < 2 {
				fmt.Println("Usage: block <ip> [reason]")
				continue
			}
			p.BlockIP(ctx, args[1], strings.Join(args[2:], " "))
		case "unblock":
			if len(args) < 2 {
				fmt.Println("Usage: unblock <ip>")
				continue
			}
			p.UnblockIP(ctx, args[1])
		case "exit", "quit":
			fmt.Println("Bye")
			return
		default:
			fmt.Println("Unknown command. Type 'help' for a list of commands.")
		}
	}
}

func intArg(args []string, i int) (int, bool) {
	if len(args) <= i {
		fmt.Println("Usage:", args[0], "<id>")
		return 0, false
	}
	id, err := strconv.Atoi(args[i])
	if err != nil {
		fmt.Println("id must be a number")
		return 0, false
	}
	return id, true
}

func promptLine(label string) string {
	fmt.Printf("%s: ", label)
	scanner := bufio.NewScanner(os.Stdin)
	if !scanner.Scan() {
		return ""
	}
	return strings.TrimSpace(scanner.Text())
}

func promptPayment(ctx context.Context, p *panel.Panel) {
	p.ShowCryptoWallets(ctx)
	input := api.CryptoPaymentInput{
		TxHash:   promptLine("Transaction hash"),
		Currency: promptLine("Currency (BTC/ETH/...)"),
	}
	fmt.Sscanf(promptLine("Amount"), "%f", &input.Amount)
	p.SubmitCryptoPayment(ctx, input)
}

func promptTicket(ctx context.Context, p *panel.Panel) {
	p.CreateTicket(ctx, api.TicketInput{
		Subject:  promptLine("Subject"),
		Message:  promptLine("Message"),
		Priority: promptLine("Priority (low/normal/high)"),
	})
}

func promptWallet(ctx context.Context, p *panel.Panel) {
	p.AddWallet(ctx, api.CryptoWallet{
		Currency: promptLine("Currency"),
		Address:  promptLine("Address"),
		Label:    promptLine("Label"),
		Active:   true,
	})
}

func main() {
	var (
		cmd     string
		showVer bool
	)
	// Shared options (-url, -session, ...) are registered by the config
	// package; only the command selection lives here.
	flag.StringVar(&cmd, "cmd", "shell", "command to run: login|register|logout|shell")
	flag.BoolVar(&showVer, "version", false, "print build info and exit")
	options := config.Parse()

	if showVer {
		fmt.Printf("Track Panel\nVersion: %s\nBuild Date: %s\n", orNA(version), orNA(buildDate))
		return
	}

	log := logger.New()
	if err := log.Init(options.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "failed to init logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Log.Sync() }()

	sess := session.New(options.SessionFile)
	if err := sess.Load(); err != nil {
		log.Log.Fatal("cannot load session", zap.Error(err))
	}

	client := api.New(options.APIURL, sess, log.Log, api.WithAuthExpired(func() {
		fmt.Println("Session expired. Please log in again (run with -cmd login).")
	}))

	ctx := context.Background()
	p := panel.New(client, os.Stdin, os.Stdout, log.Log)

	switch cmd {
	case "login":
		creds := api.Credentials{
			Username: promptLine("Username"),
			Password: promptLine("Password"),
		}
		if _, err := client.Auth.Login(ctx, creds); err != nil {
			log.Log.Fatal("login failed", zap.Error(err))
		}
		fmt.Println("Logged in. Start the shell with -cmd shell.")
	case "register":
		input := api.RegisterInput{
			Username: promptLine("Username"),
			Email:    promptLine("Email"),
			Password: promptLine("Password"),
		}
		if err := client.Auth.Register(ctx, input); err != nil {
			log.Log.Fatal("registration failed", zap.Error(err))
		}
		fmt.Println("Registered. Your account awaits approval.")
	case "logout":
		if err := client.Auth.Logout(ctx); err != nil {
			log.Log.Warn("logout request failed", zap.Error(err))
		}
		fmt.Println("Logged out.")
	case "shell":
		if !client.HealthCheck(ctx) {
			fmt.Println("Warning: backend is not reachable at", options.APIURL)
		}
		fmt.Println("Type 'help' for a list of commands.")
		repl(ctx, p)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %q (want login|register|logout|shell)\n", cmd)
		os.Exit(2)
	}
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
