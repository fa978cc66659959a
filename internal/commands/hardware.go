package commands

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/pflag"

	"cumulus/internal/api"
	"cumulus/internal/cli"
	"cumulus/internal/format"
)

func registerHardware(registry *cli.Registry) {
	module := registry.AddModule("hardware", "Manage bare metal servers")
	module.Add("list", hardwareList{})
	module.Add("detail", hardwareDetail{})
}

const hardwareListMask = "id,hostname,domain,datacenter.name,primaryIpAddress,primaryBackendIpAddress"

type hardwareList struct{}

func (hardwareList) Doc() string { return "List bare metal servers on the account" }

func (hardwareList) RegisterFlags(fs *pflag.FlagSet) {
	fs.String("domain", "", "only list servers in this domain")
	fs.Int("limit", 0, "maximum number of servers to return")
}

func (hardwareList) Execute(ctx context.Context, client *api.Client, inv *cli.Invocation) (format.Value, error) {
	opts := []api.CallOption{api.WithMask(hardwareListMask)}
	if domain, _ := inv.Flags.GetString("domain"); domain != "" {
		opts = append(opts, api.WithFilter(map[string]any{
			"hardware": map[string]any{"domain": map[string]any{"operation": domain}},
		}))
	}
	if limit, _ := inv.Flags.GetInt("limit"); limit > 0 {
		opts = append(opts, api.WithLimit(limit, 0))
	}

	data, err := client.Call(ctx, "Account", "getHardware", opts...)
	if err != nil {
		return nil, err
	}
	servers, ok := data.([]any)
	if !ok {
		return nil, fmt.Errorf("unexpected response shape from Account::getHardware")
	}

	table := format.NewTable("id", "hostname", "domain", "datacenter", "primary_ip", "backend_ip")
	for _, entry := range servers {
		table.Add(
			field(lookup(entry, "id")),
			field(lookup(entry, "hostname")),
			field(lookup(entry, "domain")),
			field(lookup(entry, "datacenter", "name")),
			field(lookup(entry, "primaryIpAddress")),
			field(lookup(entry, "primaryBackendIpAddress")),
		)
	}
	return table, nil
}

const hardwareDetailMask = "id,hostname,domain,fullyQualifiedDomainName,datacenter.name," +
	"primaryIpAddress,primaryBackendIpAddress,memoryCapacity,processorPhysicalCoreAmount," +
	"notes,operatingSystem.softwareLicense.softwareDescription.name"

type hardwareDetail struct{}

func (hardwareDetail) Doc() string { return "Show details for one bare metal server" }

func (hardwareDetail) RegisterFlags(fs *pflag.FlagSet) {}

func (hardwareDetail) Execute(ctx context.Context, client *api.Client, inv *cli.Invocation) (format.Value, error) {
	if len(inv.Args) != 1 {
		return nil, &cli.UsageError{Message: "hardware detail requires exactly one server id"}
	}
	id, err := strconv.Atoi(inv.Args[0])
	if err != nil {
		return nil, &cli.UsageError{Message: fmt.Sprintf("invalid server id %q", inv.Args[0])}
	}

	data, err := client.Call(ctx, "Hardware_Server", "getObject",
		api.WithID(id), api.WithMask(hardwareDetailMask))
	if err != nil {
		return nil, err
	}

	table := keyValueTable()
	table.Add(format.Text("id"), field(lookup(data, "id")))
	table.Add(format.Text("hostname"), field(lookup(data, "fullyQualifiedDomainName")))
	table.Add(format.Text("datacenter"), field(lookup(data, "datacenter", "name")))
	table.Add(format.Text("public_ip"), field(lookup(data, "primaryIpAddress")))
	table.Add(format.Text("private_ip"), field(lookup(data, "primaryBackendIpAddress")))
	table.Add(format.Text("os"), field(lookup(data, "operatingSystem", "softwareLicense", "softwareDescription", "name")))
	if memory, ok := lookup(data, "memoryCapacity").(float64); ok {
		table.Add(format.Text("memory"), format.Item(memory, fmt.Sprintf("%.0f GiB", memory)))
	}
	if cores, ok := lookup(data, "processorPhysicalCoreAmount").(float64); ok {
		table.Add(format.Text("cores"), format.Item(cores, fmt.Sprintf("%.0f cores", cores)))
	}
	if notes := lookup(data, "notes"); notes != nil {
		table.Add(format.Text("notes"), field(notes))
	}
	return table, nil
}
