package main

import (
	"fmt"

	"go-blog/internal/form"
	"go-blog/internal/repository"
	"go-blog/internal/service"
	"go-blog/pkg/config"
	"go-blog/pkg/db"

	"github.com/spf13/cobra"
)

var groupForm form.GroupForm

var groupCmd = &cobra.Command{
	Use:   "group",
	Short: "Manage post groups",
}

var groupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a group",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		group, errs, err := groupService().Create(groupForm)
		if err != nil {
			return err
		}
		if errs != nil && !errs.Valid() {
			return errs
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Created group %q (/group/%s)\n", group.Title, group.Slug)
		return nil
	},
}

var groupDeleteCmd = &cobra.Command{
	Use:   "delete <slug>",
	Short: "Delete a group; its posts are kept without a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := groupService().Delete(args[0]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted group %s\n", args[0])
		return nil
	},
}

func groupService() *service.GroupService {
	return service.NewGroupService(repository.NewGroupRepository(db.DB), config.GlobalConfig.Pagination.GroupsPerPage)
}

func init() {
	groupCreateCmd.Flags().StringVar(&groupForm.Title, "title", "", "group title")
	groupCreateCmd.Flags().StringVar(&groupForm.Slug, "slug", "", "URL slug")
	groupCreateCmd.Flags().StringVar(&groupForm.Description, "description", "", "group description")

	groupCmd.AddCommand(groupCreateCmd, groupDeleteCmd)
	rootCmd.AddCommand(groupCmd)
}
