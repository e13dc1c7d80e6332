// Package validation is a fluent, rule-based object validator.
//
// A validator is declared as a rule procedure that receives the execution of
// a single Execute call. The procedure picks properties of the object with
// the For functions and chains combinators on the returned handles. Every
// failed combinator records one message against the declared property name;
// Execute packages the messages into a Result in declaration order.
//
// # Usage
//
//	type Address struct {
//		Street string
//		Zip    string
//	}
//
//	type Customer struct {
//		Name    *string
//		Age     int
//		Tags    []string
//		Address *Address
//	}
//
//	addressValidator := validation.New(func(e *validation.Execution[*Address]) {
//		validation.ForString(e, func(a *Address) string { return a.Street }, "Street").
//			IsNotNullOrEmpty()
//	})
//
//	customerValidator := validation.New(func(e *validation.Execution[*Customer]) {
//		validation.ForStringPtr(e, func(c *Customer) *string { return c.Name }, "Name").
//			IsNotNullOrEmpty()
//		validation.ForOrdered(e, func(c *Customer) int { return c.Age }, "Age").
//			IsBetween(18, 130)
//		validation.ForSlice(e, func(c *Customer) []string { return c.Tags }, "Tags").
//			IsWithinRange(1, 5)
//		validation.DelegateIfNotNull(e, func(c *Customer) *Address { return c.Address }, addressValidator)
//	})
//
//	res, err := customerValidator.Execute(customer)
//	if err != nil {
//		// the call itself was malformed, e.g. customer is nil
//	}
//	if !res.Success {
//		for _, m := range res.Messages {
//			fmt.Println(m.Property, m.Text)
//		}
//	}
//
// # Errors and results
//
// Rule violations never surface as errors. Execute returns an error only for
// contract violations: a nil object, an empty property name, a nil selector
// or child validator, or a child validator that itself failed with an error.
// Such errors wrap ErrInvalidArgument and no Result is returned. Result.Err
// converts a failed Result into an *Error for code paths that prefer a
// single error value.
//
// # Concurrency
//
// Each Execute call allocates its own Execution, so a validator may be
// shared between goroutines and reused by child delegation.
//
// # Messages
//
// Combinators render text through a Catalog (DefaultCatalog unless set with
// WithCatalog). Templates use positional placeholders such as "{0}". See the
// messages package for file-backed, per-language catalogs.
package validation
