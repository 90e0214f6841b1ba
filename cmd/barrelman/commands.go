package main

import (
	"encoding/json"
	"fmt"

	"barrelman/internal/blob"
	"barrelman/internal/logger"
	"barrelman/internal/replication"
	"barrelman/pkg/domain"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
)

func (c *cli) kindsCmd() *cobra.Command {
	var root string
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List registered kinds, optionally below a root kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			kinds, err := newRegistry(c.cfg)
			if err != nil {
				return err
			}
			list := kinds.Kinds()
			if root != "" {
				k, err := domain.ParseKind(root)
				if err != nil {
					return err
				}
				if !kinds.Registered(k) {
					return domain.UnknownKindError{Kind: k}
				}
				list = kinds.Descendants(k)
			}
			out := cmd.OutOrStdout()
			for _, k := range list {
				if kinds.Abstract(k) {
					fmt.Fprintf(out, "%s\tabstract\n", k)
					continue
				}
				fmt.Fprintln(out, k)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&root, "root", "", "only list this kind and its subtypes")
	return cmd
}

func (c *cli) getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Print one entity as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return errors.Wrapf(err, "parse entity id %q", args[0])
			}
			return c.withApp(cmd, func(a *app) error {
				e, err := a.svc.Get(cmd.Context(), id)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(e)
			})
		},
	}
}

func (c *cli) changesCmd() *cobra.Command {
	var (
		since uint64
		limit int
	)
	cmd := &cobra.Command{
		Use:   "changes",
		Short: "Print entities changed after a row version, one JSON object per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(a *app) error {
				enc := json.NewEncoder(cmd.OutOrStdout())
				n := 0
				for e := range a.svc.ChangesSince(cmd.Context(), since) {
					if limit > 0 && n == limit {
						break
					}
					if err := enc.Encode(e); err != nil {
						return errors.Wrap(err, "write change")
					}
					n++
				}
				return nil
			})
		},
	}
	cmd.Flags().Uint64Var(&since, "since", 0, "exclusive lower row version")
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many entities (0 means all)")
	return cmd
}

func (c *cli) exportCmd() *cobra.Command {
	var key string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a full snapshot of the store to blob storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(a *app) error {
				exporter, ok := a.store.(replication.Exporter)
				if !ok {
					return errors.Newf("storage driver %q cannot export snapshots", c.cfg.Storage.Driver)
				}
				blobs, err := blob.Open(cmd.Context(), c.cfg.Blob)
				if err != nil {
					return errors.Wrap(err, "open blob store")
				}
				info, err := replication.ExportSnapshot(cmd.Context(), exporter, blobs, key)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes, version %d)\n", info.Key, info.Size, a.store.Version())
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&key, "key", "snapshots/latest.json", "blob key for the snapshot")
	return cmd
}

func (c *cli) replicateCmd() *cobra.Command {
	var once bool
	cmd := &cobra.Command{
		Use:   "replicate",
		Short: "Ship committed changes to the configured sinks",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(a *app) error {
				pump, err := c.newPump(cmd, a)
				if err != nil {
					return err
				}
				if !once {
					return pump.Run(cmd.Context())
				}
				n, err := pump.Drain(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "replicated %d change(s)\n", n)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&once, "once", false, "drain pending changes and exit")
	return cmd
}

func (c *cli) newPump(cmd *cobra.Command, a *app) (*replication.Pump, error) {
	rc := c.cfg.Replication
	var client redis.UniversalClient
	redisClient := func() redis.UniversalClient {
		if client == nil {
			client = redis.NewClient(&redis.Options{
				Addr:     c.cfg.Redis.Addr,
				Password: c.cfg.Redis.Password,
				DB:       c.cfg.Redis.DB,
			})
			a.closers = append(a.closers, client.Close)
		}
		return client
	}

	var sinks []replication.Sink
	for _, name := range rc.Sinks {
		switch name {
		case "blob":
			blobs, err := blob.Open(cmd.Context(), c.cfg.Blob)
			if err != nil {
				return nil, errors.Wrap(err, "open blob store")
			}
			sinks = append(sinks, replication.NewBlobSink(blobs, rc.Prefix))
		case "redis":
			sinks = append(sinks, replication.NewRedisSink(redisClient(), c.cfg.Redis.Stream, c.cfg.Redis.MaxLen))
		default:
			return nil, errors.Newf("unknown sink %q", name)
		}
	}

	var cursors replication.CursorStore = replication.NewMemoryCursors()
	if rc.Cursors == "redis" {
		cursors = replication.NewRedisCursors(redisClient(), c.cfg.Redis.CursorPrefix)
	}
	return replication.NewPump(rc.Name, a.store, cursors, sinks,
		replication.WithBatchSize(rc.BatchSize),
		replication.WithInterval(rc.Interval),
		replication.WithLogger(logger.Named("replication")),
	)
}

func (c *cli) purgeCmd() *cobra.Command {
	var through uint64
	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Drop tombstones at or below a row version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.withApp(cmd, func(a *app) error {
				n, err := a.svc.PurgeTombstones(cmd.Context(), through)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "purged %d tombstone(s)\n", n)
				return nil
			})
		},
	}
	cmd.Flags().Uint64Var(&through, "through", 0, "highest row version to purge")
	_ = cmd.MarkFlagRequired("through")
	return cmd
}
