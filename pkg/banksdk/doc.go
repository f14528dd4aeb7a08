/*
Package banksdk is a client for the bank API.

A Client covers the public endpoints and opens a Session by logging in:

	client := banksdk.NewClient("http://localhost:8080")
	session, err := client.Login(ctx, "cedric@efrei.net", "password")

	account, err := session.Mine(ctx)
	account, err = session.Credit(ctx, account.ID, decimal.NewFromInt(250))

	err = session.Logout(ctx)

# Errors

Every failed call returns an *APIError carrying the HTTP status, the error
code and the server's description. Rate-limited calls also carry RetryAfter:

	var apiErr *banksdk.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusTooManyRequests {
		time.Sleep(apiErr.RetryAfter)
	}

The same APIError values are used by the server to write its error bodies,
so both sides agree on the wire format.
*/
package banksdk
