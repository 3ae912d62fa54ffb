/*
 * @author: sun977
 * @date: 2026.03.15
 * @description: 主程序入口
 */

package main

func main() {
	Execute()
}
