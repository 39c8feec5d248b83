// Code generated by goa v3.23.1, DO NOT EDIT.
//
// Task Service HTTP client CLI support package
//
// Command:
// $ goa gen github.com/StianAK82/RegnskapSky-sub001/design

package cli

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	taskservicec "github.com/StianAK82/RegnskapSky-sub001/gen/http/task_service/client"
	goahttp "goa.design/goa/v3/http"
	goa "goa.design/goa/v3/pkg"
)

// UsageCommands returns the set of commands and sub-commands using the format
//
//	command (subcommand1|subcommand2|...)
func UsageCommands() []string {
	return []string{
		"task-service (readyz|livez|create-task|get-task|update-task|delete-task|list-tasks|get-task-schedule|create-client|get-client|update-client|delete-client|list-clients)",
	}
}

// UsageExamples produces an example of a valid invocation of the CLI tool.
func UsageExamples() string {
	return os.Args[0] + " " + "task-service readyz" + "\n" +
		""
}

// ParseEndpoint returns the endpoint and payload as specified on the command
// line.
func ParseEndpoint(
	scheme, host string,
	doer goahttp.Doer,
	enc func(*http.Request) goahttp.Encoder,
	dec func(*http.Response) goahttp.Decoder,
	restore bool,
) (goa.Endpoint, any, error) {
	var (
		taskServiceFlags = flag.NewFlagSet("task-service", flag.ContinueOnError)

		taskServiceReadyzFlags = flag.NewFlagSet("readyz", flag.ExitOnError)

		taskServiceLivezFlags = flag.NewFlagSet("livez", flag.ExitOnError)

		taskServiceCreateTaskFlags           = flag.NewFlagSet("create-task", flag.ExitOnError)
		taskServiceCreateTaskBodyFlag        = taskServiceCreateTaskFlags.String("body", "REQUIRED", "")
		taskServiceCreateTaskVersionFlag     = taskServiceCreateTaskFlags.String("version", "", "")
		taskServiceCreateTaskBearerTokenFlag = taskServiceCreateTaskFlags.String("bearer-token", "", "")

		taskServiceGetTaskFlags           = flag.NewFlagSet("get-task", flag.ExitOnError)
		taskServiceGetTaskUIDFlag         = taskServiceGetTaskFlags.String("uid", "REQUIRED", "The unique identifier of the task")
		taskServiceGetTaskVersionFlag     = taskServiceGetTaskFlags.String("version", "", "")
		taskServiceGetTaskBearerTokenFlag = taskServiceGetTaskFlags.String("bearer-token", "", "")

		taskServiceUpdateTaskFlags           = flag.NewFlagSet("update-task", flag.ExitOnError)
		taskServiceUpdateTaskBodyFlag        = taskServiceUpdateTaskFlags.String("body", "REQUIRED", "")
		taskServiceUpdateTaskUIDFlag         = taskServiceUpdateTaskFlags.String("uid", "REQUIRED", "The unique identifier of the task")
		taskServiceUpdateTaskVersionFlag     = taskServiceUpdateTaskFlags.String("version", "", "")
		taskServiceUpdateTaskBearerTokenFlag = taskServiceUpdateTaskFlags.String("bearer-token", "", "")
		taskServiceUpdateTaskEtagFlag        = taskServiceUpdateTaskFlags.String("etag", "", "")

		taskServiceDeleteTaskFlags           = flag.NewFlagSet("delete-task", flag.ExitOnError)
		taskServiceDeleteTaskUIDFlag         = taskServiceDeleteTaskFlags.String("uid", "REQUIRED", "The unique identifier of the task")
		taskServiceDeleteTaskVersionFlag     = taskServiceDeleteTaskFlags.String("version", "", "")
		taskServiceDeleteTaskBearerTokenFlag = taskServiceDeleteTaskFlags.String("bearer-token", "", "")
		taskServiceDeleteTaskEtagFlag        = taskServiceDeleteTaskFlags.String("etag", "", "")

		taskServiceListTasksFlags           = flag.NewFlagSet("list-tasks", flag.ExitOnError)
		taskServiceListTasksVersionFlag     = taskServiceListTasksFlags.String("version", "", "")
		taskServiceListTasksClientUIDFlag   = taskServiceListTasksFlags.String("client-uid", "", "")
		taskServiceListTasksBearerTokenFlag = taskServiceListTasksFlags.String("bearer-token", "", "")

		taskServiceGetTaskScheduleFlags           = flag.NewFlagSet("get-task-schedule", flag.ExitOnError)
		taskServiceGetTaskScheduleUIDFlag         = taskServiceGetTaskScheduleFlags.String("uid", "REQUIRED", "The unique identifier of the task")
		taskServiceGetTaskScheduleVersionFlag     = taskServiceGetTaskScheduleFlags.String("version", "", "")
		taskServiceGetTaskScheduleFromDateFlag    = taskServiceGetTaskScheduleFlags.String("from-date", "", "")
		taskServiceGetTaskScheduleLimitFlag       = taskServiceGetTaskScheduleFlags.String("limit", "", "")
		taskServiceGetTaskScheduleBearerTokenFlag = taskServiceGetTaskScheduleFlags.String("bearer-token", "", "")

		taskServiceCreateClientFlags           = flag.NewFlagSet("create-client", flag.ExitOnError)
		taskServiceCreateClientBodyFlag        = taskServiceCreateClientFlags.String("body", "REQUIRED", "")
		taskServiceCreateClientVersionFlag     = taskServiceCreateClientFlags.String("version", "", "")
		taskServiceCreateClientBearerTokenFlag = taskServiceCreateClientFlags.String("bearer-token", "", "")

		taskServiceGetClientFlags           = flag.NewFlagSet("get-client", flag.ExitOnError)
		taskServiceGetClientUIDFlag         = taskServiceGetClientFlags.String("uid", "REQUIRED", "The unique identifier of the client")
		taskServiceGetClientVersionFlag     = taskServiceGetClientFlags.String("version", "", "")
		taskServiceGetClientBearerTokenFlag = taskServiceGetClientFlags.String("bearer-token", "", "")

		taskServiceUpdateClientFlags           = flag.NewFlagSet("update-client", flag.ExitOnError)
		taskServiceUpdateClientBodyFlag        = taskServiceUpdateClientFlags.String("body", "REQUIRED", "")
		taskServiceUpdateClientUIDFlag         = taskServiceUpdateClientFlags.String("uid", "REQUIRED", "The unique identifier of the client")
		taskServiceUpdateClientVersionFlag     = taskServiceUpdateClientFlags.String("version", "", "")
		taskServiceUpdateClientBearerTokenFlag = taskServiceUpdateClientFlags.String("bearer-token", "", "")
		taskServiceUpdateClientEtagFlag        = taskServiceUpdateClientFlags.String("etag", "", "")

		taskServiceDeleteClientFlags           = flag.NewFlagSet("delete-client", flag.ExitOnError)
		taskServiceDeleteClientUIDFlag         = taskServiceDeleteClientFlags.String("uid", "REQUIRED", "The unique identifier of the client")
		taskServiceDeleteClientVersionFlag     = taskServiceDeleteClientFlags.String("version", "", "")
		taskServiceDeleteClientBearerTokenFlag = taskServiceDeleteClientFlags.String("bearer-token", "", "")
		taskServiceDeleteClientEtagFlag        = taskServiceDeleteClientFlags.String("etag", "", "")

		taskServiceListClientsFlags           = flag.NewFlagSet("list-clients", flag.ExitOnError)
		taskServiceListClientsVersionFlag     = taskServiceListClientsFlags.String("version", "", "")
		taskServiceListClientsBearerTokenFlag = taskServiceListClientsFlags.String("bearer-token", "", "")
	)
	taskServiceFlags.Usage = taskServiceUsage
	taskServiceReadyzFlags.Usage = taskServiceReadyzUsage
	taskServiceLivezFlags.Usage = taskServiceLivezUsage
	taskServiceCreateTaskFlags.Usage = taskServiceCreateTaskUsage
	taskServiceGetTaskFlags.Usage = taskServiceGetTaskUsage
	taskServiceUpdateTaskFlags.Usage = taskServiceUpdateTaskUsage
	taskServiceDeleteTaskFlags.Usage = taskServiceDeleteTaskUsage
	taskServiceListTasksFlags.Usage = taskServiceListTasksUsage
	taskServiceGetTaskScheduleFlags.Usage = taskServiceGetTaskScheduleUsage
	taskServiceCreateClientFlags.Usage = taskServiceCreateClientUsage
	taskServiceGetClientFlags.Usage = taskServiceGetClientUsage
	taskServiceUpdateClientFlags.Usage = taskServiceUpdateClientUsage
	taskServiceDeleteClientFlags.Usage = taskServiceDeleteClientUsage
	taskServiceListClientsFlags.Usage = taskServiceListClientsUsage

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, nil, err
	}

	if flag.NArg() < 2 { // two non flag args are required: SERVICE and ENDPOINT (aka COMMAND)
		return nil, nil, fmt.Errorf("not enough arguments")
	}

	var (
		svcn string
		svcf *flag.FlagSet
	)
	{
		svcn = flag.Arg(0)
		switch svcn {
		case "task-service":
			svcf = taskServiceFlags
		default:
			return nil, nil, fmt.Errorf("unknown service %q", svcn)
		}
	}
	if err := svcf.Parse(flag.Args()[1:]); err != nil {
		return nil, nil, err
	}

	var (
		epn string
		epf *flag.FlagSet
	)
	{
		epn = svcf.Arg(0)
		switch svcn {
		case "task-service":
			switch epn {
			case "readyz":
				epf = taskServiceReadyzFlags

			case "livez":
				epf = taskServiceLivezFlags

			case "create-task":
				epf = taskServiceCreateTaskFlags

			case "get-task":
				epf = taskServiceGetTaskFlags

			case "update-task":
				epf = taskServiceUpdateTaskFlags

			case "delete-task":
				epf = taskServiceDeleteTaskFlags

			case "list-tasks":
				epf = taskServiceListTasksFlags

			case "get-task-schedule":
				epf = taskServiceGetTaskScheduleFlags

			case "create-client":
				epf = taskServiceCreateClientFlags

			case "get-client":
				epf = taskServiceGetClientFlags

			case "update-client":
				epf = taskServiceUpdateClientFlags

			case "delete-client":
				epf = taskServiceDeleteClientFlags

			case "list-clients":
				epf = taskServiceListClientsFlags

			}

		}
	}
	if epf == nil {
		return nil, nil, fmt.Errorf("unknown %q endpoint %q", svcn, epn)
	}

	// Parse endpoint flags if any
	if svcf.NArg() > 1 {
		if err := epf.Parse(svcf.Args()[1:]); err != nil {
			return nil, nil, err
		}
	}

	var (
		data     any
		endpoint goa.Endpoint
		err      error
	)
	{
		switch svcn {
		case "task-service":
			c := taskservicec.NewClient(scheme, host, doer, enc, dec, restore)
			switch epn {
			case "readyz":
				endpoint = c.Readyz()
			case "livez":
				endpoint = c.Livez()
			case "create-task":
				endpoint = c.CreateTask()
				data, err = taskservicec.BuildCreateTaskPayload(*taskServiceCreateTaskBodyFlag, *taskServiceCreateTaskVersionFlag, *taskServiceCreateTaskBearerTokenFlag)
			case "get-task":
				endpoint = c.GetTask()
				data, err = taskservicec.BuildGetTaskPayload(*taskServiceGetTaskUIDFlag, *taskServiceGetTaskVersionFlag, *taskServiceGetTaskBearerTokenFlag)
			case "update-task":
				endpoint = c.UpdateTask()
				data, err = taskservicec.BuildUpdateTaskPayload(*taskServiceUpdateTaskBodyFlag, *taskServiceUpdateTaskUIDFlag, *taskServiceUpdateTaskVersionFlag, *taskServiceUpdateTaskBearerTokenFlag, *taskServiceUpdateTaskEtagFlag)
			case "delete-task":
				endpoint = c.DeleteTask()
				data, err = taskservicec.BuildDeleteTaskPayload(*taskServiceDeleteTaskUIDFlag, *taskServiceDeleteTaskVersionFlag, *taskServiceDeleteTaskBearerTokenFlag, *taskServiceDeleteTaskEtagFlag)
			case "list-tasks":
				endpoint = c.ListTasks()
				data, err = taskservicec.BuildListTasksPayload(*taskServiceListTasksVersionFlag, *taskServiceListTasksClientUIDFlag, *taskServiceListTasksBearerTokenFlag)
			case "get-task-schedule":
				endpoint = c.GetTaskSchedule()
				data, err = taskservicec.BuildGetTaskSchedulePayload(*taskServiceGetTaskScheduleUIDFlag, *taskServiceGetTaskScheduleVersionFlag, *taskServiceGetTaskScheduleFromDateFlag, *taskServiceGetTaskScheduleLimitFlag, *taskServiceGetTaskScheduleBearerTokenFlag)
			case "create-client":
				endpoint = c.CreateClient()
				data, err = taskservicec.BuildCreateClientPayload(*taskServiceCreateClientBodyFlag, *taskServiceCreateClientVersionFlag, *taskServiceCreateClientBearerTokenFlag)
			case "get-client":
				endpoint = c.GetClient()
				data, err = taskservicec.BuildGetClientPayload(*taskServiceGetClientUIDFlag, *taskServiceGetClientVersionFlag, *taskServiceGetClientBearerTokenFlag)
			case "update-client":
				endpoint = c.UpdateClient()
				data, err = taskservicec.BuildUpdateClientPayload(*taskServiceUpdateClientBodyFlag, *taskServiceUpdateClientUIDFlag, *taskServiceUpdateClientVersionFlag, *taskServiceUpdateClientBearerTokenFlag, *taskServiceUpdateClientEtagFlag)
			case "delete-client":
				endpoint = c.DeleteClient()
				data, err = taskservicec.BuildDeleteClientPayload(*taskServiceDeleteClientUIDFlag, *taskServiceDeleteClientVersionFlag, *taskServiceDeleteClientBearerTokenFlag, *taskServiceDeleteClientEtagFlag)
			case "list-clients":
				endpoint = c.ListClients()
				data, err = taskservicec.BuildListClientsPayload(*taskServiceListClientsVersionFlag, *taskServiceListClientsBearerTokenFlag)
			}
		}
	}
	if err != nil {
		return nil, nil, err
	}

	return endpoint, data, nil
}

// taskServiceUsage displays the usage of the task-service command and its
// subcommands.
func taskServiceUsage() {
	fmt.Fprintln(os.Stderr, `The RegnskapSky Task Service manages recurring back-office tasks for accounting-firm clients.`)
	fmt.Fprintf(os.Stderr, "Usage:\n    %s [globalflags] task-service COMMAND [flags]\n\n", os.Args[0])
	fmt.Fprintln(os.Stderr, "COMMAND:")
	fmt.Fprintln(os.Stderr, `    readyz: Check if the service is able to take inbound requests.`)
	fmt.Fprintln(os.Stderr, `    livez: Check if the service is alive.`)
	fmt.Fprintln(os.Stderr, `    create-task: Create a recurring task for a client. The frequency label is normalized to a canonical frequency and the next due date is computed from the start date.`)
	fmt.Fprintln(os.Stderr, `    get-task: Get a single task. The response carries an ETag header for use with updates and deletes.`)
	fmt.Fprintln(os.Stderr, `    update-task: Update a task. The client and creation timestamp are immutable; the schedule is re-resolved from the frequency label and start date.`)
	fmt.Fprintln(os.Stderr, `    delete-task: Delete a task.`)
	fmt.Fprintln(os.Stderr, `    list-tasks: List the tasks of the caller's license, optionally filtered to a single client.`)
	fmt.Fprintln(os.Stderr, `    get-task-schedule: Get the upcoming due dates of a task from a reference date.`)
	fmt.Fprintln(os.Stderr, `    create-client: Create a client in the caller's license.`)
	fmt.Fprintln(os.Stderr, `    get-client: Get a single client. The response carries an ETag header for use with updates and deletes.`)
	fmt.Fprintln(os.Stderr, `    update-client: Update a client.`)
	fmt.Fprintln(os.Stderr, `    delete-client: Delete a client. All tasks of the client are deleted as part of the cascade.`)
	fmt.Fprintln(os.Stderr, `    list-clients: List the clients of the caller's license.`)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Additional help:")
	fmt.Fprintf(os.Stderr, "    %s task-service COMMAND --help\n", os.Args[0])
}
func taskServiceReadyzUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] task-service readyz", os.Args[0])
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Check if the service is able to take inbound requests.`)

	// Flags list

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "task-service readyz")
}

func taskServiceLivezUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] task-service livez", os.Args[0])
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Check if the service is alive.`)

	// Flags list

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "task-service livez")
}

func taskServiceCreateTaskUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] task-service create-task", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprint(os.Stderr, " -version STRING")
	fmt.Fprint(os.Stderr, " -bearer-token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Create a recurring task for a client. The frequency label is normalized to a canonical frequency and the next due date is computed from the start date.`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)
	fmt.Fprintln(os.Stderr, `    -version STRING: `)
	fmt.Fprintln(os.Stderr, `    -bearer-token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "task-service create-task --body '{\n      \"assignee_email\": \"kari@fjordvik.no\",\n      \"client_uid\": \"a33899b0-0b48-4d0c-a915-6a0b4b2a8b59\",\n      \"description\": \"Levere MVA-melding for termin\",\n      \"frequency_label\": \"annenhver måned\",\n      \"start_date\": \"2024-01-15T00:00:00Z\",\n      \"status\": \"open\",\n      \"title\": \"MVA-melding\"\n   }' --version \"1\" --bearer-token \"eyJhbGci...\"")
}

func taskServiceGetTaskUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] task-service get-task", os.Args[0])
	fmt.Fprint(os.Stderr, " -uid STRING")
	fmt.Fprint(os.Stderr, " -version STRING")
	fmt.Fprint(os.Stderr, " -bearer-token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Get a single task. The response carries an ETag header for use with updates and deletes.`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -uid STRING: The unique identifier of the task`)
	fmt.Fprintln(os.Stderr, `    -version STRING: `)
	fmt.Fprintln(os.Stderr, `    -bearer-token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "task-service get-task --uid \"7cad5a8d-19d0-41a4-81a6-043453daf9ee\" --version \"1\" --bearer-token \"eyJhbGci...\"")
}

func taskServiceUpdateTaskUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] task-service update-task", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprint(os.Stderr, " -uid STRING")
	fmt.Fprint(os.Stderr, " -version STRING")
	fmt.Fprint(os.Stderr, " -bearer-token STRING")
	fmt.Fprint(os.Stderr, " -etag STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Update a task. The client and creation timestamp are immutable; the schedule is re-resolved from the frequency label and start date.`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)
	fmt.Fprintln(os.Stderr, `    -uid STRING: The unique identifier of the task`)
	fmt.Fprintln(os.Stderr, `    -version STRING: `)
	fmt.Fprintln(os.Stderr, `    -bearer-token STRING: `)
	fmt.Fprintln(os.Stderr, `    -etag STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "task-service update-task --body '{\n      \"assignee_email\": \"kari@fjordvik.no\",\n      \"client_uid\": \"a33899b0-0b48-4d0c-a915-6a0b4b2a8b59\",\n      \"description\": \"Levere MVA-melding for termin\",\n      \"frequency_label\": \"annenhver måned\",\n      \"start_date\": \"2024-01-15T00:00:00Z\",\n      \"status\": \"open\",\n      \"title\": \"MVA-melding\"\n   }' --uid \"7cad5a8d-19d0-41a4-81a6-043453daf9ee\" --version \"1\" --bearer-token \"eyJhbGci...\" --etag \"123\"")
}

func taskServiceDeleteTaskUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] task-service delete-task", os.Args[0])
	fmt.Fprint(os.Stderr, " -uid STRING")
	fmt.Fprint(os.Stderr, " -version STRING")
	fmt.Fprint(os.Stderr, " -bearer-token STRING")
	fmt.Fprint(os.Stderr, " -etag STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Delete a task.`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -uid STRING: The unique identifier of the task`)
	fmt.Fprintln(os.Stderr, `    -version STRING: `)
	fmt.Fprintln(os.Stderr, `    -bearer-token STRING: `)
	fmt.Fprintln(os.Stderr, `    -etag STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "task-service delete-task --uid \"7cad5a8d-19d0-41a4-81a6-043453daf9ee\" --version \"1\" --bearer-token \"eyJhbGci...\" --etag \"123\"")
}

func taskServiceListTasksUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] task-service list-tasks", os.Args[0])
	fmt.Fprint(os.Stderr, " -version STRING")
	fmt.Fprint(os.Stderr, " -client-uid STRING")
	fmt.Fprint(os.Stderr, " -bearer-token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `List the tasks of the caller's license, optionally filtered to a single client.`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -version STRING: `)
	fmt.Fprintln(os.Stderr, `    -client-uid STRING: `)
	fmt.Fprintln(os.Stderr, `    -bearer-token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "task-service list-tasks --version \"1\" --client-uid \"a33899b0-0b48-4d0c-a915-6a0b4b2a8b59\" --bearer-token \"eyJhbGci...\"")
}

func taskServiceGetTaskScheduleUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] task-service get-task-schedule", os.Args[0])
	fmt.Fprint(os.Stderr, " -uid STRING")
	fmt.Fprint(os.Stderr, " -version STRING")
	fmt.Fprint(os.Stderr, " -from-date STRING")
	fmt.Fprint(os.Stderr, " -limit INT")
	fmt.Fprint(os.Stderr, " -bearer-token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Get the upcoming due dates of a task from a reference date.`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -uid STRING: The unique identifier of the task`)
	fmt.Fprintln(os.Stderr, `    -version STRING: `)
	fmt.Fprintln(os.Stderr, `    -from-date STRING: `)
	fmt.Fprintln(os.Stderr, `    -limit INT: `)
	fmt.Fprintln(os.Stderr, `    -bearer-token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "task-service get-task-schedule --uid \"7cad5a8d-19d0-41a4-81a6-043453daf9ee\" --version \"1\" --from-date \"2024-01-01T00:00:00Z\" --limit 12 --bearer-token \"eyJhbGci...\"")
}

func taskServiceCreateClientUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] task-service create-client", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprint(os.Stderr, " -version STRING")
	fmt.Fprint(os.Stderr, " -bearer-token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Create a client in the caller's license.`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)
	fmt.Fprintln(os.Stderr, `    -version STRING: `)
	fmt.Fprintln(os.Stderr, `    -bearer-token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "task-service create-client --body '{\n      \"contact_email\": \"post@fjordvik.no\",\n      \"contact_name\": \"Ola Nordmann\",\n      \"name\": \"Fjordvik AS\",\n      \"org_number\": \"987654321\"\n   }' --version \"1\" --bearer-token \"eyJhbGci...\"")
}

func taskServiceGetClientUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] task-service get-client", os.Args[0])
	fmt.Fprint(os.Stderr, " -uid STRING")
	fmt.Fprint(os.Stderr, " -version STRING")
	fmt.Fprint(os.Stderr, " -bearer-token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Get a single client. The response carries an ETag header for use with updates and deletes.`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -uid STRING: The unique identifier of the client`)
	fmt.Fprintln(os.Stderr, `    -version STRING: `)
	fmt.Fprintln(os.Stderr, `    -bearer-token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "task-service get-client --uid \"a33899b0-0b48-4d0c-a915-6a0b4b2a8b59\" --version \"1\" --bearer-token \"eyJhbGci...\"")
}

func taskServiceUpdateClientUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] task-service update-client", os.Args[0])
	fmt.Fprint(os.Stderr, " -body JSON")
	fmt.Fprint(os.Stderr, " -uid STRING")
	fmt.Fprint(os.Stderr, " -version STRING")
	fmt.Fprint(os.Stderr, " -bearer-token STRING")
	fmt.Fprint(os.Stderr, " -etag STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Update a client.`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -body JSON: `)
	fmt.Fprintln(os.Stderr, `    -uid STRING: The unique identifier of the client`)
	fmt.Fprintln(os.Stderr, `    -version STRING: `)
	fmt.Fprintln(os.Stderr, `    -bearer-token STRING: `)
	fmt.Fprintln(os.Stderr, `    -etag STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "task-service update-client --body '{\n      \"contact_email\": \"post@fjordvik.no\",\n      \"contact_name\": \"Ola Nordmann\",\n      \"name\": \"Fjordvik AS\",\n      \"org_number\": \"987654321\"\n   }' --uid \"a33899b0-0b48-4d0c-a915-6a0b4b2a8b59\" --version \"1\" --bearer-token \"eyJhbGci...\" --etag \"123\"")
}

func taskServiceDeleteClientUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] task-service delete-client", os.Args[0])
	fmt.Fprint(os.Stderr, " -uid STRING")
	fmt.Fprint(os.Stderr, " -version STRING")
	fmt.Fprint(os.Stderr, " -bearer-token STRING")
	fmt.Fprint(os.Stderr, " -etag STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `Delete a client. All tasks of the client are deleted as part of the cascade.`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -uid STRING: The unique identifier of the client`)
	fmt.Fprintln(os.Stderr, `    -version STRING: `)
	fmt.Fprintln(os.Stderr, `    -bearer-token STRING: `)
	fmt.Fprintln(os.Stderr, `    -etag STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "task-service delete-client --uid \"a33899b0-0b48-4d0c-a915-6a0b4b2a8b59\" --version \"1\" --bearer-token \"eyJhbGci...\" --etag \"123\"")
}

func taskServiceListClientsUsage() {
	// Header with flags
	fmt.Fprintf(os.Stderr, "%s [flags] task-service list-clients", os.Args[0])
	fmt.Fprint(os.Stderr, " -version STRING")
	fmt.Fprint(os.Stderr, " -bearer-token STRING")
	fmt.Fprintln(os.Stderr)

	// Description
	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, `List the clients of the caller's license.`)

	// Flags list
	fmt.Fprintln(os.Stderr, `    -version STRING: `)
	fmt.Fprintln(os.Stderr, `    -bearer-token STRING: `)

	fmt.Fprintln(os.Stderr)
	fmt.Fprintln(os.Stderr, "Example:")
	fmt.Fprintf(os.Stderr, "    %s %s\n", os.Args[0], "task-service list-clients --version \"1\" --bearer-token \"eyJhbGci...\"")
}
