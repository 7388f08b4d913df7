// Package product implements the depot product catalog: the Product record,
// its validation rules and the stores that persist it.
//
// A product is valid when all of the following hold:
//
//   - title is not blank, has at least 10 characters and no other stored
//     product has the same title
//   - description is not blank
//   - price is present, numeric and at least 0.01
//   - image_url is not blank and ends in .gif, .jpg or .png (any case)
//
// Violations are returned as validator.ValidationErrors. Each carries a
// symbolic kind (blank, too_short, taken, not_a_number,
// greater_than_or_equal_to, invalid) whose message is looked up under
// "errors.messages.<kind>" in the bundled locales:
//
//	tr, _ := product.NewTranslator(ctx)
//	svc, _ := product.NewService(product.NewMemoryStore(), tr)
//	p := product.New(product.Attributes{Title: "ball"})
//	if err := svc.Save(ctx, p); err != nil {
//	    fmt.Println(product.Messages(err)["title"])
//	    // [is too short and must contain at least 10 characters]
//	}
//
// Messages follow the locale set with i18n.SetLocale on the context.
package product
