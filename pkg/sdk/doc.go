// Package boxaloo embeds the BOXALOO load board in a Go process: the load and
// truck stores, the claim workflow and the city autocomplete, without the
// HTTP server.
//
//	client, _ := boxaloo.New(boxaloo.WithSeed())
//	loads, _ := client.Loads().Available(ctx)
//	claimed, err := client.Loads().Claim(ctx, loads[0].ID, "carrier-7", "Acme Haulers")
//	if errors.Is(err, boxaloo.ErrLoadNotAvailable) {
//	    // someone else got it first
//	}
//	cities := client.Cities().Search(ctx, "chi", 8)
//
// State lives in process memory and is lost when the Client is dropped.
package boxaloo
