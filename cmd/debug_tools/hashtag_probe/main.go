// Package main YouTube 数据查询调试工具
// 独立验证 API 密钥和话题聚合流水线，不依赖数据库
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"misinfoRadar/internal/config"
	"misinfoRadar/internal/youtube"
)

// ==========================================
// 命令行参数
// ==========================================

var (
	configPath string
	maxResults int

	colorGreen  = color.New(color.FgGreen, color.Bold)
	colorYellow = color.New(color.FgYellow)
	colorCyan   = color.New(color.FgCyan)
)

var rootCmd = &cobra.Command{
	Use:   "hashtag-probe",
	Short: "YouTube 数据查询调试工具",
}

var hashtagsCmd = &cobra.Command{
	Use:   "hashtags <query>",
	Short: "按关键词执行话题标签聚合",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := buildClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		insights, err := client.FetchHashtags(ctx, args[0])
		if err != nil {
			return err
		}

		colorCyan.Printf("查询 %q 聚合出 %d 个标签\n", args[0], len(insights))
		fmt.Println(strings.Repeat("-", 60))
		for i, tag := range insights {
			fmt.Printf("%2d. %-30s 出现 %d 次 / %d 个视频\n", i+1, tag.Tag, tag.Occurrences, tag.VideoCount)
		}
		return nil
	},
}

var videoCheckCmd = &cobra.Command{
	Use:   "videocheck <videoId>",
	Short: "生成单视频排查摘要",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := buildClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		check := client.CheckVideoForMisinformation(ctx, args[0])
		if check == nil {
			colorYellow.Println("视频不存在或查询失败")
			return nil
		}

		colorGreen.Printf("视频: %s\n", check.Title)
		fmt.Printf("  频道: %s\n", check.ChannelTitle)
		fmt.Printf("  发布时间: %s\n", check.PublishedAt)
		fmt.Printf("  播放: %s  点赞: %s  评论: %s\n", check.ViewCount, check.LikeCount, check.CommentCount)
		if check.Description != "" {
			fmt.Printf("  描述: %s\n", truncate(check.Description, 200))
		}
		return nil
	},
}

var channelCmd = &cobra.Command{
	Use:   "channel <channelId>",
	Short: "列出频道最近发布的视频",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := buildClient()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		items := client.GetChannelVideos(ctx, args[0], maxResults)
		colorCyan.Printf("频道 %s 最近 %d 个视频\n", args[0], len(items))
		fmt.Println(strings.Repeat("-", 60))
		for i, item := range items {
			fmt.Printf("%2d. [%s] %s\n", i+1, item.ID.VideoID, item.Snippet.Title)
			fmt.Printf("    发布于 %s\n", item.Snippet.PublishedAt)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/config.yml", "配置文件路径")
	rootCmd.PersistentFlags().IntVarP(&maxResults, "max", "n", 10, "结果条数上限")
	rootCmd.AddCommand(hashtagsCmd, videoCheckCmd, channelCmd)
}

// buildClient 从配置构建客户端
// 密钥缺失时直接报错，调试工具没有降级的意义
func buildClient() (*youtube.Client, error) {
	if err := config.LoadConfig(configPath); err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}

	client := youtube.NewClient(config.Get().YouTube)
	if !client.Enabled() {
		return nil, fmt.Errorf("未配置 API 密钥 (配置文件 youtube.api_key 或环境变量 YOUTUBE_API_KEY)")
	}
	return client, nil
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		os.Exit(1)
	}
}
