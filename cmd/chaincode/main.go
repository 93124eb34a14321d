package main

import (
	"log"

	"github.com/fekuna/agritrace-service/internal/chaincode"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

func main() {
	cc, err := contractapi.NewChaincode(&chaincode.TraceContract{})
	if err != nil {
		log.Panicf("Error creating agritrace chaincode: %v", err)
	}
	cc.Info.Title = "agritrace"
	cc.Info.Version = "1.0.0"

	if err := cc.Start(); err != nil {
		log.Panicf("Error starting agritrace chaincode: %v", err)
	}
}
