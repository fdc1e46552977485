package cli

const usageTemplate = `
Sherlock Domains Client

Usage:
  sherlock [OPTIONS] COMMAND

Options:
  --version            Show version information
  --api URL            API URL (default: https://api.sherlockdomains.com)
  --db PATH            Path to local database (default: sherlock-client.db)
  --key HEX            Agent private key (not recommended, use env var or file)
  --key-file PATH      Path to file containing agent private key

Private Key Priority (highest to lowest):
  1. SHERLOCK_PRIVATE_KEY environment variable
  2. --key-file (file path)
  3. --key (command line)
  4. Persisted identity (a new keypair is generated on first use)

Commands:
  login                        Authenticate and show the agent identity
  status                       Show local identity and session state
  me                           Show account information from the server
  claim <email>                Link an email to claim the account
  contact show                 Show the registrant contact profile
  contact set                  Set the registrant contact profile
  search <query>               Search domain availability
  buy <search-id> <domain> [method]
                               Request payment details for a domain
                               (method: credit_card or lightning, default credit_card)
  domains                      List domains under management
  dns list <domain-id>         List DNS records
  dns add <domain-id> <type> <name> <value> [ttl]
  dns update <domain-id> <record-id> <type> <name> <value> [ttl]
  dns delete <domain-id> <record-id>

Examples:
  sherlock search example
  sherlock contact set
  sherlock buy 2fc54a1e example.com lightning
  sherlock domains
  sherlock dns list b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5
  sherlock dns add b692f5c0-2d88-4aa1-a9e1-13aa6e4976d5 A www 1.2.3.4 3600
  sherlock --api https://api.example.com login
`
