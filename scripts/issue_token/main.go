// Command issue_token mints a bearer token for local development.
//
//	go run ./scripts/issue_token -user u-1 -role Franchisee -branch Coimbatore
package main

import (
	"flag"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/franchise-ledger/internal/auth"
	server_config "github.com/carson-networks/franchise-ledger/internal/config"
	"github.com/carson-networks/franchise-ledger/internal/ledger"
)

func main() {
	user := flag.String("user", "", "user id placed in the token subject")
	role := flag.String("role", "", "Franchisee or Administration")
	branch := flag.String("branch", "", "branch of a Franchisee")
	flag.Parse()

	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	parsedRole, err := ledger.ParseRole(*role)
	if err != nil {
		logrus.WithError(err).Fatal("ledger.ParseRole")
		return
	}

	principal := ledger.Principal{UserID: *user, Role: parsedRole, BranchID: *branch}
	m := auth.NewJWTManager(env.Auth.JWTSecret, env.Auth.Issuer, env.Auth.TokenDuration)

	token, err := m.Generate(principal)
	if err != nil {
		logrus.WithError(err).Fatal("auth.Generate")
		return
	}

	claims, err := m.Validate(token)
	if err != nil {
		logrus.WithError(err).Fatal("auth.Validate")
		return
	}
	if _, err = claims.Principal(); err != nil {
		logrus.WithError(err).Fatal("token would be rejected")
		return
	}

	fmt.Println(token)
}
