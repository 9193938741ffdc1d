package main

import (
	"context"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"business-catalog-api/pkg/lambda"
)

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.GetConnectionManager().GetContainer()
	if err != nil {
		return lambda.Error(500, "Internal server error").APIGateway(), nil
	}

	resp, err := lambda.NewCatalogHandler(container.CatalogService)(lambda.FromAPIGateway(event))
	if err != nil {
		return lambda.Error(500, "Internal server error").APIGateway(), nil
	}
	return resp.APIGateway(), nil
}

func main() {
	awslambda.Start(handler)
}
