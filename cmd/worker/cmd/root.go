package cmd

import (
	"context"
	"fmt"
	"os"

	"bitbucket.org/Amartha/go-savings-engine/cmd/setup"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/graceful"
	"bitbucket.org/Amartha/go-savings-engine/internal/common/log"
	"bitbucket.org/Amartha/go-savings-engine/internal/config"
	"bitbucket.org/Amartha/go-savings-engine/internal/deliveries/job"
	"bitbucket.org/Amartha/go-savings-engine/internal/services"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "worker",
	Short: "Worker application to configuring and running a job",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runJobCmd)

	runJobCmd.Flags().StringP(runJobCmdName, "n", "", "job name")
	runJobCmd.MarkFlagRequired(runJobCmdName)
	runJobCmd.Flags().StringP(runJobCmdVersion, "v", "", "job version")
	runJobCmd.MarkFlagRequired(runJobCmdVersion)
	runJobCmd.Flags().StringP(runJobCmdDate, "d", "", "job running date")
}

var (
	listCmd = &cobra.Command{
		Use:   "list",
		Short: "List job name and version",
		Long:  ``,
		Run:   list,
	}
)

func list(ccmd *cobra.Command, args []string) {
	j := job.New(config.Config{}, &services.Services{})
	for version, l := range j.Routes {
		for name := range l {
			fmt.Printf("version=%s, name=%s\n", version, name)
		}
	}
}

var (
	runJobCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run execution job",
		Long:    ``,
		Example: "worker run -n={job-name} -v={job-version} -d={job-date}",
		Run:     runJob,
	}
	runJobCmdName    = "name"
	runJobCmdVersion = "version"
	runJobCmdDate    = "date"
)

func runJob(ccmd *cobra.Command, args []string) {
	ctx := context.Background()

	name, _ := ccmd.Flags().GetString(runJobCmdName)
	version, _ := ccmd.Flags().GetString(runJobCmdVersion)
	date, _ := ccmd.Flags().GetString(runJobCmdDate)

	s, stopperContract, err := setup.Init("job")
	if err != nil {
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	defer graceful.StopProcess(s.Config.App.GracefulTimeout, stopperContract...)

	j := job.New(s.Config, s.Service)
	j.Start(ctx, job.Flags{
		JobName: name,
		Version: version,
		Date:    date,
	})
	log.Info(ctx, "job finished!")
}
