package commands

import (
	"context"
	"fmt"

	"github.com/spf13/pflag"

	"cumulus/internal/api"
	"cumulus/internal/cli"
	"cumulus/internal/format"
)

func registerAccount(registry *cli.Registry) {
	module := registry.AddModule("account", "View account information")
	module.Add("summary", accountSummary{})
}

const accountSummaryMask = "id,companyName,firstName,lastName,email,address1,city,country," +
	"hardwareCount,virtualGuestCount"

type accountSummary struct{}

func (accountSummary) Doc() string { return "Show a summary of the account" }

func (accountSummary) RegisterFlags(fs *pflag.FlagSet) {}

func (accountSummary) Execute(ctx context.Context, client *api.Client, inv *cli.Invocation) (format.Value, error) {
	data, err := client.Call(ctx, "Account", "getObject", api.WithMask(accountSummaryMask))
	if err != nil {
		return nil, err
	}

	table := keyValueTable()
	table.Add(format.Text("id"), field(lookup(data, "id")))
	table.Add(format.Text("company"), field(lookup(data, "companyName")))
	name := fmt.Sprintf("%v %v", lookup(data, "firstName"), lookup(data, "lastName"))
	table.Add(format.Text("contact"), format.Text(name))
	table.Add(format.Text("email"), field(lookup(data, "email")))
	table.Add(format.Text("address"), format.List{
		field(lookup(data, "address1")),
		field(lookup(data, "city")),
		field(lookup(data, "country")),
	})
	table.Add(format.Text("hardware"), field(lookup(data, "hardwareCount")))
	table.Add(format.Text("virtual_guests"), field(lookup(data, "virtualGuestCount")))
	return table, nil
}
