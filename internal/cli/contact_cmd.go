package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/dealdesk/internal/cli/formatter"
	"github.com/alexanderramin/dealdesk/internal/domain"
	"github.com/alexanderramin/dealdesk/internal/service"
	"github.com/spf13/cobra"
)

func newContactCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Manage contacts",
	}

	cmd.AddCommand(
		newContactAddCmd(app),
		newContactListCmd(app),
		newContactShowCmd(app),
		newContactUpdateCmd(app),
	)

	return cmd
}

func contactFlags(cmd *cobra.Command, input *service.ContactInput) {
	cmd.Flags().StringVar(&input.Phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&input.Email, "email", "", "Email address")
	cmd.Flags().StringVar(&input.Company, "company", "", "Company name")
	cmd.Flags().StringVar(&input.Notes, "notes", "", "Free-form notes")
}

func newContactAddCmd(app *App) *cobra.Command {
	var input service.ContactInput

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Create a new contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input.Name = args[0]
			if app.interactive() && !cmd.Flags().Changed("phone") && !cmd.Flags().Changed("email") {
				if err := contactForm(&input); err != nil {
					return err
				}
			}

			contact, err := app.Contacts.CreateOrUpdate(context.Background(), input)
			if err != nil {
				return err
			}
			fmt.Printf("Created contact %s [%s]\n", contact.Name, formatter.ShortID(contact.ID))
			return nil
		},
	}

	contactFlags(cmd, &input)
	return cmd
}

func newContactListCmd(app *App) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List or search contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			contacts, err := app.Contacts.Search(context.Background(), query)
			if err != nil {
				return err
			}
			if len(contacts) == 0 {
				fmt.Println("No contacts found.")
				return nil
			}
			fmt.Println(formatter.FormatContactList(contacts))
			return nil
		},
	}

	cmd.Flags().StringVarP(&query, "search", "s", "", "Filter by name, phone, email or company")
	return cmd
}

func newContactShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <contact>",
		Short: "Show a contact and its deals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveContactID(ctx, app, args[0])
			if err != nil {
				return err
			}
			contact, err := app.Contacts.GetByID(ctx, id)
			if err != nil {
				return err
			}

			deals, err := app.Deals.List(ctx)
			if err != nil {
				return err
			}
			var owned []*domain.Deal
			for _, d := range deals {
				if d.ContactID != nil && *d.ContactID == id {
					owned = append(owned, d)
				}
			}

			fmt.Println(formatter.FormatContactCard(contact, owned))
			return nil
		},
	}
}

func newContactUpdateCmd(app *App) *cobra.Command {
	var input service.ContactInput
	var name string

	cmd := &cobra.Command{
		Use:   "update <contact>",
		Short: "Update a contact",
		Long: "Update a contact. All optional fields are overwritten: a flag\n" +
			"left blank clears the stored value.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			id, err := resolveContactID(ctx, app, args[0])
			if err != nil {
				return err
			}

			existing, err := app.Contacts.GetByID(ctx, id)
			if err != nil {
				return err
			}

			input.ID = id
			input.Name = name
			if strings.TrimSpace(name) == "" {
				input.Name = existing.Name
			}
			if app.interactive() && cmd.Flags().NFlag() == 0 {
				input.Phone = domain.StrFromPtr(existing.Phone)
				input.Email = domain.StrFromPtr(existing.Email)
				input.Company = domain.StrFromPtr(existing.Company)
				input.Notes = domain.StrFromPtr(existing.Notes)
				if err := contactForm(&input); err != nil {
					return err
				}
			}

			contact, err := app.Contacts.CreateOrUpdate(ctx, input)
			if err != nil {
				return err
			}
			fmt.Printf("Updated contact %s\n", contact.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Contact name")
	contactFlags(cmd, &input)
	return cmd
}
