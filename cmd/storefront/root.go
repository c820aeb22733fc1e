package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"vastra-store/internal/booking"
	"vastra-store/internal/cart"
	"vastra-store/internal/catalog"
	"vastra-store/internal/config"
	"vastra-store/internal/content"

	"github.com/spf13/cobra"
)

func newRootCmd(cfg *config.Config, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Vastra ethnic wear storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	a := newApp(cfg, out)

	root.AddCommand(productsCmd(a))
	root.AddCommand(cartCmd(a))
	root.AddCommand(loginCmd(a))
	root.AddCommand(verifyCmd(a))
	root.AddCommand(logoutCmd(a))
	root.AddCommand(whoamiCmd(a))
	root.AddCommand(bookCmd(a))
	root.AddCommand(pageCmd(a))

	return root
}

func productsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "products", Short: "Browse the catalog"}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all products",
		RunE: func(c *cobra.Command, args []string) error {
			products, err := a.catalog.ListProducts(c.Context())
			if err != nil {
				return err
			}
			printProducts(a, products)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one product",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			p, err := a.catalog.GetProduct(c.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s  Rs. %d\n", p.Name, p.Price)
			fmt.Fprintf(a.out, "Category: %s\n", p.Category)
			if len(p.Sizes) > 0 {
				fmt.Fprintf(a.out, "Sizes: %s\n", strings.Join(p.Sizes, ", "))
			}
			if len(p.Colors) > 0 {
				fmt.Fprintf(a.out, "Colors: %s\n", strings.Join(p.Colors, ", "))
			}
			fmt.Fprintln(a.out, p.Description)
			return nil
		},
	})

	var minPrice, maxPrice int
	var colors, types []string
	filter := &cobra.Command{
		Use:   "filter",
		Short: "Filter products by price, color and type",
		RunE: func(c *cobra.Command, args []string) error {
			products, err := a.catalog.FilterProducts(c.Context(), catalog.Criteria{
				MinPrice:     minPrice,
				MaxPrice:     maxPrice,
				Colors:       colors,
				ProductTypes: types,
			})
			if err != nil {
				return err
			}
			printProducts(a, products)
			return nil
		},
	}
	filter.Flags().IntVar(&minPrice, "min-price", 0, "minimum price in rupees")
	filter.Flags().IntVar(&maxPrice, "max-price", 0, "maximum price in rupees")
	filter.Flags().StringSliceVar(&colors, "colors", nil, "match any of these colors")
	filter.Flags().StringSliceVar(&types, "types", nil, "match any of these product types")
	cmd.AddCommand(filter)

	cmd.AddCommand(&cobra.Command{
		Use:   "options",
		Short: "Show the available filter vocabulary",
		RunE: func(c *cobra.Command, args []string) error {
			opts, err := a.catalog.GetFilterOptions(c.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Colors: %s\n", strings.Join(opts.Colors, ", "))
			fmt.Fprintf(a.out, "Types: %s\n", strings.Join(opts.ProductTypes, ", "))
			fmt.Fprintf(a.out, "Price range: Rs. %d - Rs. %d\n", opts.PriceRange.Min, opts.PriceRange.Max)
			return nil
		},
	})

	return cmd
}

func cartCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{Use: "cart", Short: "Manage your shopping cart"}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show cart contents",
		RunE: func(c *cobra.Command, args []string) error {
			a.drawer.Render()
			return nil
		},
	})

	var size string
	var qty int
	add := &cobra.Command{
		Use:   "add <product-id>",
		Short: "Add a product to the cart",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			p, err := a.catalog.GetProduct(c.Context(), args[0])
			if err != nil {
				return err
			}

			selected := size
			if selected == "" && len(p.Sizes) > 0 {
				selected = p.Sizes[0]
			}

			a.engine.AddToCart(cart.LineItem{
				ProductID:    p.ID,
				Name:         p.Name,
				Price:        p.Price,
				Image:        p.FirstImage(),
				SelectedSize: selected,
				Category:     p.Category,
			}, qty)

			if a.gate.IsAuthenticated() {
				fmt.Fprintf(a.out, "Added %s (%s) to cart\n", p.Name, selected)
			}
			return nil
		},
	}
	add.Flags().StringVar(&size, "size", "", "size label, defaults to the first available")
	add.Flags().IntVar(&qty, "qty", 1, "quantity")
	cmd.AddCommand(add)

	var removeSize string
	remove := &cobra.Command{
		Use:   "remove <product-id>",
		Short: "Remove a line item",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			a.engine.RemoveFromCart(args[0], removeSize)
			return nil
		},
	}
	remove.Flags().StringVar(&removeSize, "size", "", "size label of the line to remove")
	cmd.AddCommand(remove)

	var updateSize string
	var updateQty int
	update := &cobra.Command{
		Use:   "update <product-id>",
		Short: "Change a line item's quantity (0 removes it)",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			a.engine.UpdateQuantity(args[0], updateSize, updateQty)
			return nil
		},
	}
	update.Flags().StringVar(&updateSize, "size", "", "size label of the line to update")
	update.Flags().IntVar(&updateQty, "qty", 1, "new quantity")
	_ = update.MarkFlagRequired("qty")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Empty the cart",
		RunE: func(c *cobra.Command, args []string) error {
			a.engine.ClearCart()
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "open",
		Short: "Open the cart drawer",
		RunE: func(c *cobra.Command, args []string) error {
			detach := a.drawer.Attach()
			defer detach()
			a.engine.SetCartOpen(true)
			return nil
		},
	})

	return cmd
}

func loginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login <email>",
		Short: "Request a one-time passcode",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if err := a.auth.RequestOTP(c.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Passcode sent to %s. Finish with: storefront verify %s <code>\n", args[0], args[0])
			return nil
		},
	}
}

func verifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <email> <code>",
		Short: "Verify the passcode and sign in",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			profile, err := a.auth.VerifyOTP(c.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Signed in as %s\n", profile.Email)
			return nil
		},
	}
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out",
		RunE: func(c *cobra.Command, args []string) error {
			a.auth.Logout()
			fmt.Fprintln(a.out, "Signed out")
			return nil
		},
	}
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in user",
		RunE: func(c *cobra.Command, args []string) error {
			if !a.gate.IsAuthenticated() {
				fmt.Fprintln(a.out, "Not signed in")
				return nil
			}
			fmt.Fprintln(a.out, a.gate.UserEmail())
			return nil
		},
	}
}

func bookCmd(a *app) *cobra.Command {
	var req booking.Request
	var date string

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a boutique appointment",
		RunE: func(c *cobra.Command, args []string) error {
			parsed, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
			}
			req.Date = parsed

			conf, err := a.booking.Book(c.Context(), req)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Appointment booked. Reference: %s\n", conf.Reference)
			return nil
		},
	}

	cmd.Flags().StringVar(&req.Name, "name", "", "your name")
	cmd.Flags().StringVar(&req.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&req.Phone, "phone", "", "contact phone")
	cmd.Flags().StringVar(&date, "date", "", "appointment date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&req.TimeSlot, "time", booking.TimeSlots[0], "time slot")
	cmd.Flags().StringVar(&req.Type, "type", booking.AppointmentTypes[0], "appointment type")
	cmd.Flags().StringVar(&req.Location, "location", booking.Locations[0], "boutique location")
	cmd.Flags().StringVar(&req.Notes, "notes", "", "anything we should know")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func pageCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "page [slug]",
		Short: "Read a store page (about, contact, shipping-policy)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				pages, err := content.Pages()
				if err != nil {
					return err
				}
				for _, p := range pages {
					fmt.Fprintf(a.out, "%-16s %s\n", p.Slug, p.Title)
				}
				return nil
			}

			page, err := content.PageBySlug(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "%s\n\n%s", page.Title, page.Body)
			return nil
		},
	}
}

func printProducts(a *app, products []catalog.Product) {
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products found")
		return
	}
	for _, p := range products {
		tag := ""
		if p.IsNew {
			tag = "  NEW"
		} else if p.IsSale {
			tag = fmt.Sprintf("  SALE -%d%%", p.Discount)
		}
		fmt.Fprintf(a.out, "%-10s %-28s Rs. %-8d %s%s\n", p.ID, p.Name, p.Price, p.Category, tag)
	}
}
