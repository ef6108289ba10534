package controllers

import "errors"

var errParty = errors.New("party_size must be a positive number")
