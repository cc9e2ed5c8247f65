package rabbitmq

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/suite"

	"github.com/zyzyva/mailqueue/internal/core/domain"
)

// BrokerSuite exercises the real publish path against a RabbitMQ container:
// management API publish, routed/not-routed classification and AMQP
// provisioning of the fixed vhost.
type BrokerSuite struct {
	suite.Suite
	pool     *dockertest.Pool
	resource *dockertest.Resource
	mgmtPort int
	amqpPort int
}

func TestBroker(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping broker integration test in short mode")
	}
	suite.Run(t, new(BrokerSuite))
}

func (suite *BrokerSuite) SetupSuite() {
	pool, err := dockertest.NewPool("")
	if err != nil {
		suite.T().Skipf("Docker not available: %v", err)
	}
	if err := pool.Client.Ping(); err != nil {
		suite.T().Skipf("Docker not available: %v", err)
	}
	suite.pool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "rabbitmq",
		Tag:        "3.13-management",
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		suite.T().Fatalf("Could not start RabbitMQ: %v", err)
	}
	suite.resource = resource

	suite.mgmtPort = hostPort(suite.T(), resource, "15672/tcp")
	suite.amqpPort = hostPort(suite.T(), resource, "5672/tcp")

	// The management plugin takes a while to come up
	pool.MaxWait = 2 * time.Minute
	err = pool.Retry(func() error {
		req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("http://localhost:%d/api/overview", suite.mgmtPort), nil)
		if err != nil {
			return err
		}
		req.SetBasicAuth("guest", "guest")

		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("management API not ready: %d", resp.StatusCode)
		}
		return nil
	})
	if err != nil {
		suite.T().Fatalf("RabbitMQ never became ready: %v", err)
	}

	// The container only ships the default vhost; create the fixed one and
	// let guest act inside it.
	suite.mgmtPut("/api/vhosts/"+Vhost, "")
	suite.mgmtPut("/api/permissions/"+Vhost+"/guest", `{"configure":".*","write":".*","read":".*"}`)
}

func (suite *BrokerSuite) TearDownSuite() {
	if suite.pool != nil && suite.resource != nil {
		if err := suite.pool.Purge(suite.resource); err != nil {
			suite.T().Logf("Could not purge RabbitMQ container: %v", err)
		}
	}
}

func (suite *BrokerSuite) mgmtPut(path, body string) {
	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("http://localhost:%d%s", suite.mgmtPort, path), strings.NewReader(body))
	suite.Require().NoError(err)
	req.SetBasicAuth("guest", "guest")
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	suite.Require().NoError(err)
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusMultipleChoices {
		raw, _ := io.ReadAll(resp.Body)
		suite.T().Fatalf("PUT %s failed: %d %s", path, resp.StatusCode, raw)
	}
}

func hostPort(t *testing.T, resource *dockertest.Resource, id string) int {
	t.Helper()

	port, err := strconv.Atoi(resource.GetPort(id))
	if err != nil {
		t.Fatalf("Could not resolve container port %s: %v", id, err)
	}
	return port
}

func (suite *BrokerSuite) TestPublishLifecycle() {
	ctx := context.Background()
	publisher := NewPublisher(NewClient("localhost", suite.mgmtPort, "guest", "guest"))

	// The queue is not provisioned yet, so the broker drops the message
	err := publisher.Publish(ctx, "emails", []byte(`{"probe":true}`))
	var notRouted *domain.NotRoutedError
	suite.Require().ErrorAs(err, &notRouted)

	// Provision over AMQP and publish again
	topology, err := DialTopology("localhost", suite.amqpPort, "guest", "guest")
	suite.Require().NoError(err)
	defer topology.Close()

	suite.Require().NoError(topology.EnsureQueue("emails"))
	suite.Require().NoError(topology.VerifyQueue("emails"))

	suite.Require().NoError(publisher.Publish(ctx, "emails", []byte(`{"probe":true}`)))
}

func (suite *BrokerSuite) TestPublish_BadCredentials() {
	publisher := NewPublisher(NewClient("localhost", suite.mgmtPort, "guest", "wrong"))

	err := publisher.Publish(context.Background(), "emails", []byte(`{}`))

	var remote *domain.RemoteError
	suite.Require().ErrorAs(err, &remote)
	suite.Equal(http.StatusUnauthorized, remote.StatusCode)
}
