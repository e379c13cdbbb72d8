// Package mqtt publishes OBD telemetry snapshots and DTCs to a broker, and
// accepts remote commands (clear codes, toggle freeze-frame, start/stop
// recording) over a command topic.
package mqtt

import (
	"encoding/json"
	"log"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/provrb/obdium/common"
)

const (
	DefaultUpdateInterval = 10 * time.Second
	DefaultBroker         = "tcp://localhost:1883"
	DefaultClientID       = "obdium-agent"
	DefaultTopic          = "obd/telemetry"
)

// Config holds the settings for a Client.
type Config struct {
	Broker         string
	ClientID       string
	Topic          string
	DTCTopic       string
	CommandTopic   string
	UpdateInterval time.Duration
}

// Client publishes periodic telemetry snapshots and DTCs, and dispatches
// incoming remote commands to a caller-supplied handler.
type Client struct {
	config         Config
	client         paho.Client
	stopChan       chan struct{}
	dataSource     func() json.Marshaler
	commandHandler func(cmd common.ServerCommand) error
}

// NewClient builds a Client. dataSource is polled once per UpdateInterval
// to produce the next telemetry snapshot; cmdHandler runs for every command
// received on CommandTopic.
func NewClient(config Config, dataSource func() json.Marshaler, cmdHandler func(cmd common.ServerCommand) error) *Client {
	return &Client{
		config:         config,
		stopChan:       make(chan struct{}),
		dataSource:     dataSource,
		commandHandler: cmdHandler,
	}
}

// Connect opens the broker connection and, once established, subscribes to
// the command topic.
func (c *Client) Connect() error {
	opts := paho.NewClientOptions()
	opts.AddBroker(c.config.Broker)
	opts.SetClientID(c.config.ClientID)
	opts.SetAutoReconnect(true)
	opts.SetOnConnectHandler(func(paho.Client) {
		log.Println("mqtt: connected to broker")
		c.subscribeToCommands()
	})
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		log.Printf("mqtt: connection lost: %v", err)
	})

	c.client = paho.NewClient(opts)
	if token := c.client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

// StartPublishing begins the periodic telemetry publish loop in a goroutine.
func (c *Client) StartPublishing() {
	ticker := time.NewTicker(c.config.UpdateInterval)

	log.Printf("mqtt: publishing telemetry to %s every %v", c.config.Topic, c.config.UpdateInterval)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-c.stopChan:
				return
			case <-ticker.C:
				c.publishTelemetry()
			}
		}
	}()
}

// StopPublishing stops the periodic telemetry publish loop.
func (c *Client) StopPublishing() {
	close(c.stopChan)
}

// Disconnect closes the broker connection if open.
func (c *Client) Disconnect() {
	if c.client != nil && c.client.IsConnected() {
		c.client.Disconnect(250)
	}
}

func (c *Client) publishTelemetry() {
	snapshot := c.dataSource()
	if snapshot == nil {
		return
	}

	data, err := snapshot.MarshalJSON()
	if err != nil {
		log.Printf("mqtt: marshal telemetry: %v", err)
		return
	}

	token := c.client.Publish(c.config.Topic, 0, false, data)
	if token.Wait() && token.Error() != nil {
		log.Printf("mqtt: publish telemetry: %v", token.Error())
	}
}

// PublishDTC publishes a single trouble code to DTCTopic (or Topic+"/dtc"
// when unset).
func (c *Client) PublishDTC(dtc common.DTCCode) {
	if c.client == nil || !c.client.IsConnected() {
		return
	}

	data, err := json.Marshal(dtc)
	if err != nil {
		log.Printf("mqtt: marshal dtc: %v", err)
		return
	}

	topic := c.config.DTCTopic
	if topic == "" {
		topic = c.config.Topic + "/dtc"
	}

	token := c.client.Publish(topic, 0, false, data)
	if token.Wait() && token.Error() != nil {
		log.Printf("mqtt: publish dtc %s: %v", dtc.DTC, token.Error())
	}
}

func (c *Client) subscribeToCommands() {
	topic := c.config.CommandTopic
	if topic == "" {
		return
	}

	token := c.client.Subscribe(topic, 1, c.handleIncomingCommand)
	go func() {
		<-token.Done()
		if token.Error() != nil {
			log.Printf("mqtt: subscribe %s: %v", topic, token.Error())
		} else {
			log.Printf("mqtt: subscribed to command topic %s", topic)
		}
	}()
}

func (c *Client) handleIncomingCommand(_ paho.Client, msg paho.Message) {
	var cmd common.ServerCommand
	if err := json.Unmarshal(msg.Payload(), &cmd); err != nil {
		log.Printf("mqtt: bad command payload: %v", err)
		return
	}

	if c.commandHandler == nil {
		return
	}
	if err := c.commandHandler(cmd); err != nil {
		log.Printf("mqtt: handle command %s: %v", cmd.Type, err)
	}
}
