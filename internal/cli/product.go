package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/depot/svc/product"
)

var ErrInvalidProduct = errors.New("product is invalid")

// productFlags are the candidate attributes accepted by validate and create.
type productFlags struct {
	title       string
	description string
	price       string
	imageURL    string
}

func (f *productFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.title, "title", "", "product title")
	cmd.Flags().StringVar(&f.description, "description", "", "product description")
	cmd.Flags().StringVar(&f.price, "price", "", "product price, e.g. 49.50")
	cmd.Flags().StringVar(&f.imageURL, "image-url", "", "product image URL ending in .gif, .jpg or .png")
}

func (f *productFlags) product() *product.Product {
	return product.New(product.Attributes{
		Title:       f.title,
		Description: f.description,
		Price:       product.ParsePrice(f.price),
		ImageURL:    f.imageURL,
	})
}

// validationResult is the JSON shape printed by validate and by a rejected create.
type validationResult struct {
	Valid  bool                `json:"valid"`
	Errors map[string][]string `json:"errors"`
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func newValidateCmd(flags *globalFlags) *cobra.Command {
	var pf productFlags

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check a product against the catalog rules without saving it",
		Example: `  depot validate --title "Programming Ruby" --description yyy --price 1 --image-url fred.gif
  depot validate --fixtures products.yml --title "Programming Ruby 1.9" --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := a.context(cmd.Context())
			verr := a.service.Validate(ctx, pf.product())
			messages := product.Messages(verr)
			if verr != nil && messages == nil {
				return verr
			}

			if flags.jsonOutput {
				if err := writeJSON(cmd.OutOrStdout(), validationResult{Valid: verr == nil, Errors: messages}); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), renderValidation(a.validator.FullMessages(ctx, verr)))
			}

			if verr != nil {
				return ErrInvalidProduct
			}
			return nil
		},
	}
	pf.bind(cmd)
	return cmd
}

func newCreateCmd(flags *globalFlags) *cobra.Command {
	var pf productFlags

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Validate and save a product",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := a.context(cmd.Context())
			p := pf.product()
			if err := a.service.Save(ctx, p); err != nil {
				messages := product.Messages(err)
				if messages == nil {
					return err
				}
				if flags.jsonOutput {
					if err := writeJSON(cmd.OutOrStdout(), validationResult{Errors: messages}); err != nil {
						return err
					}
				} else {
					fmt.Fprint(cmd.OutOrStdout(), renderValidation(a.validator.FullMessages(ctx, err)))
				}
				return ErrInvalidProduct
			}

			if flags.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), p)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderProducts([]*product.Product{p}))
			return nil
		},
	}
	pf.bind(cmd)
	return cmd
}

func newListCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored products ordered by title",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd.Context(), flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			products, err := a.service.List(cmd.Context())
			if err != nil {
				return err
			}
			if flags.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), products)
			}
			fmt.Fprint(cmd.OutOrStdout(), renderProducts(products))
			return nil
		},
	}
}
